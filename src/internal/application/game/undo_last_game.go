package game

import (
	"fmt"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/shared"
	"go.uber.org/zap"
)

// 撤銷結果訊息
const (
	MessageUndoDeleted = "Deleted successfully."
	MessageUndoEmpty   = "No lines to delete."
)

// UndoLastGameResult 撤銷結果
type UndoLastGameResult struct {
	Deleted bool
	Message string
}

// UndoLastGameUseCase 刪除最近一筆牌局記錄
//
// 日誌為空時不是錯誤，Deleted 為 false
type UndoLastGameUseCase struct {
	repo      mahjong.GameRecordRepository
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewUndoLastGameUseCase 創建 Use Case 實例
func NewUndoLastGameUseCase(
	repo mahjong.GameRecordRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *UndoLastGameUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UndoLastGameUseCase{
		repo:      repo,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute 執行撤銷
func (uc *UndoLastGameUseCase) Execute() (*UndoLastGameResult, error) {
	var deleted bool
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		deleted, err = uc.repo.DeleteMostRecent(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete most recent game: %w", err)
	}

	if !deleted {
		uc.logger.Info("undo requested on empty game log")
		return &UndoLastGameResult{Deleted: false, Message: MessageUndoEmpty}, nil
	}

	uc.logger.Info("last game undone")
	if uc.publisher != nil {
		if err := uc.publisher.Publish(mahjong.NewLastGameUndoneEvent()); err != nil {
			uc.logger.Warn("failed to publish undo event", zap.Error(err))
		}
	}
	return &UndoLastGameResult{Deleted: true, Message: MessageUndoDeleted}, nil
}
