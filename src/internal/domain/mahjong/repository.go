package mahjong

import "github.com/jackyeh168/mahjong_ledger/src/internal/domain/shared"

// ===========================
// GameRecord Repository 介面
// ===========================

// GameRecordRepository 牌局記錄倉儲（只可追加的日誌）
//
// Domain Layer 定義介面，Infrastructure Layer 實作。
// 所有基礎設施錯誤都以 ErrStoreUnavailable 返回（附帶底層原因）。
type GameRecordRepository interface {
	// Append 追加一筆記錄並返回倉儲分配的流水號
	// 前置條件：record 已通過驗證且尚未持久化
	// 後置條件：流水號嚴格大於所有既有記錄
	Append(ctx shared.TransactionContext, record *GameRecord) (int64, error)

	// ListAll 依流水號遞增返回全部記錄
	ListAll(ctx shared.TransactionContext) ([]*GameRecord, error)

	// Count 資料列數量（不重建、不驗證資料列）
	Count(ctx shared.TransactionContext) (int64, error)

	// DeleteMostRecent 刪除流水號最大的記錄
	// 倉儲為空時為 no-op，返回 false
	DeleteMostRecent(ctx shared.TransactionContext) (bool, error)

	// ClearAll 刪除並重建資料表
	// 後置條件：ListAll 返回空列表；不影響玩家名單與倍率
	ClearAll(ctx shared.TransactionContext) error
}
