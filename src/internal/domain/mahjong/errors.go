package mahjong

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// 錯誤代碼常量
const (
	// 牌局記錄相關
	ErrCodeInvalidRecord ErrorCode = "INVALID_RECORD"

	// 資料集相關
	ErrCodeEmptyDataset ErrorCode = "EMPTY_DATASET"

	// 倉儲相關
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"

	// 設定相關
	ErrCodeInvalidPlayer        ErrorCode = "INVALID_PLAYER"
	ErrCodeInvalidMultiplier    ErrorCode = "INVALID_MULTIPLIER"
	ErrCodeInvalidActivePlayers ErrorCode = "INVALID_ACTIVE_PLAYERS"
)

// ===========================
// DomainError 結構
// ===========================

// DomainError 領域錯誤
//
// - Code 用於 errors.Is 判斷
// - Context 用於調試和日誌
// - Cause 保留底層錯誤（例如資料庫驅動錯誤）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
	Cause   error
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if len(e.Context) > 0 {
		msg = fmt.Sprintf("%s (context: %+v)", msg, e.Context)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// WithContext 添加上下文信息（返回新的錯誤實例）
func (e *DomainError) WithContext(keyValues ...interface{}) *DomainError {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)

	// 複製現有上下文
	for k, v := range e.Context {
		ctx[k] = v
	}

	// 添加新上下文
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
		Cause:   e.Cause,
	}
}

// WithCause 附加底層錯誤（返回新的錯誤實例）
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: e.Context,
		Cause:   cause,
	}
}

// Is 實現 errors.Is 接口（以錯誤代碼判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Unwrap 返回底層錯誤
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// ===========================
// 預定義錯誤
// ===========================

// 牌局記錄相關錯誤
var (
	ErrInvalidRecord = &DomainError{
		Code:    ErrCodeInvalidRecord,
		Message: "invalid game record",
	}
)

// 資料集相關錯誤
var (
	// ErrEmptyDataset 沒有任何牌局記錄
	// 查詢層以「無資料」狀態回報，不視為失敗
	ErrEmptyDataset = &DomainError{
		Code:    ErrCodeEmptyDataset,
		Message: "no games recorded",
	}
)

// 倉儲相關錯誤
var (
	ErrStoreUnavailable = &DomainError{
		Code:    ErrCodeStoreUnavailable,
		Message: "game record store unavailable",
	}
)

// 設定相關錯誤
var (
	ErrInvalidPlayer = &DomainError{
		Code:    ErrCodeInvalidPlayer,
		Message: "player name cannot be empty",
	}

	ErrInvalidMultiplier = &DomainError{
		Code:    ErrCodeInvalidMultiplier,
		Message: "multiplier must be one of 0.10, 0.15, 0.20",
	}

	ErrInvalidActivePlayers = &DomainError{
		Code:    ErrCodeInvalidActivePlayers,
		Message: "please select four players",
	}
)
