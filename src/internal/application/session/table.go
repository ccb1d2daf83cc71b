package session

import (
	"fmt"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"go.uber.org/zap"
)

// SelectTableCommand 選定牌桌（依座位順序）
type SelectTableCommand struct {
	Players []string
}

// SelectTableResult 選定結果
type SelectTableResult struct {
	Table []string
}

// SelectTableUseCase 從名單中選出四位玩家作為當前牌桌
type SelectTableUseCase struct {
	session *Session
	logger  *zap.Logger
}

// NewSelectTableUseCase 創建 Use Case 實例
func NewSelectTableUseCase(session *Session, logger *zap.Logger) *SelectTableUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SelectTableUseCase{session: session, logger: logger}
}

// Execute 執行選定
//
// 錯誤處理：
// - ErrInvalidActivePlayers: 人數不是四位、有重複、或不在名單中
func (uc *SelectTableUseCase) Execute(cmd SelectTableCommand) (*SelectTableResult, error) {
	active, err := uc.session.selectTable(cmd.Players)
	if err != nil {
		return nil, fmt.Errorf("failed to select table: %w", err)
	}

	table := playerNames(active.Players())
	uc.logger.Info("table selected", zap.Strings("players", table))
	return &SelectTableResult{Table: table}, nil
}

// ===========================
// SetMultiplier
// ===========================

// SetMultiplierCommand 設定倍率命令，例如 "0.20"
type SetMultiplierCommand struct {
	Multiplier string
}

// SetMultiplierResult 設定結果
type SetMultiplierResult struct {
	Multiplier string
	Message    string // 例如 "Multiplier set to $0.20"
}

// SetMultiplierUseCase 變更目前生效的倍率
//
// 倍率只影響之後的結算顯示，不改寫已存在的牌局
type SetMultiplierUseCase struct {
	session *Session
	logger  *zap.Logger
}

// NewSetMultiplierUseCase 創建 Use Case 實例
func NewSetMultiplierUseCase(session *Session, logger *zap.Logger) *SetMultiplierUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SetMultiplierUseCase{session: session, logger: logger}
}

// Execute 執行設定
func (uc *SetMultiplierUseCase) Execute(cmd SetMultiplierCommand) (*SetMultiplierResult, error) {
	m, err := mahjong.ParseMultiplier(cmd.Multiplier)
	if err != nil {
		return nil, fmt.Errorf("invalid multiplier: %w", err)
	}

	uc.session.setMultiplier(m)
	uc.logger.Info("multiplier changed", zap.String("multiplier", m.String()))
	return &SetMultiplierResult{
		Multiplier: m.String(),
		Message:    fmt.Sprintf("Multiplier set to %s", m),
	}, nil
}
