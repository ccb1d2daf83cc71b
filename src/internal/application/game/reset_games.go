package game

import (
	"fmt"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/shared"
	"go.uber.org/zap"
)

// MessageGamesReset 清空後的提示
const MessageGamesReset = "Game results have been reset."

// ResetGamesResult 清空結果
type ResetGamesResult struct {
	Cleared int
	Message string
}

// ResetGamesUseCase 清空牌局日誌
//
// 只影響牌局記錄，不影響玩家名單、牌桌與倍率
type ResetGamesUseCase struct {
	repo      mahjong.GameRecordRepository
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewResetGamesUseCase 創建 Use Case 實例
func NewResetGamesUseCase(
	repo mahjong.GameRecordRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *ResetGamesUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResetGamesUseCase{
		repo:      repo,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute 執行清空
//
// 不讀取記錄內容，日誌中有損壞的資料列時同樣可以清空
func (uc *ResetGamesUseCase) Execute() (*ResetGamesResult, error) {
	var cleared int
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		n, err := uc.repo.Count(ctx)
		if err != nil {
			return err
		}
		cleared = int(n)
		return uc.repo.ClearAll(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset game log: %w", err)
	}

	uc.logger.Info("game log reset", zap.Int("cleared", cleared))
	if uc.publisher != nil {
		if err := uc.publisher.Publish(mahjong.NewGameLogResetEvent(cleared)); err != nil {
			uc.logger.Warn("failed to publish reset event", zap.Error(err))
		}
	}
	return &ResetGamesResult{Cleared: cleared, Message: MessageGamesReset}, nil
}
