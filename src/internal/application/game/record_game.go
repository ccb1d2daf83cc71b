package game

import (
	"fmt"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ===========================
// RecordGame Use Case
// ===========================

// RecordGameCommand 新增一局的命令
//
// 自摸時 Loser 可留空，三位輸家由當前牌桌帶出
type RecordGameCommand struct {
	Winner  string
	Loser   string
	WinType string
	Points  int
}

// RecordGameResult 新增結果
type RecordGameResult struct {
	RecordID int64
	Winner   string
	Losers   []string
	WinType  string
	Points   int
}

// RecordGameUseCase 驗證提交內容並追加到牌局日誌
type RecordGameUseCase struct {
	repo      mahjong.GameRecordRepository
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	table     TableProvider
	logger    *zap.Logger
}

// NewRecordGameUseCase 創建 Use Case 實例
func NewRecordGameUseCase(
	repo mahjong.GameRecordRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	table TableProvider,
	logger *zap.Logger,
) *RecordGameUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordGameUseCase{
		repo:      repo,
		txManager: txManager,
		publisher: publisher,
		table:     table,
		logger:    logger,
	}
}

// Execute 執行新增
//
// 錯誤處理：
// - ErrInvalidActivePlayers: 尚未選定四位玩家
// - ErrInvalidRecord: 提交內容不合法（Context["rule"] 為介面訊息）
// - ErrStoreUnavailable: 寫入失敗
func (uc *RecordGameUseCase) Execute(cmd RecordGameCommand) (*RecordGameResult, error) {
	var persisted *mahjong.GameRecord
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		var err error
		persisted, err = uc.appendRecord(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("game recorded",
		zap.Int64("record_id", persisted.ID()),
		zap.String("winner", persisted.Winner().String()),
		zap.String("win_type", persisted.WinType().String()),
		zap.Int("points", persisted.Points()),
	)
	if uc.publisher != nil {
		if err := uc.publisher.Publish(mahjong.NewGameRecordedEvent(persisted)); err != nil {
			uc.logger.Warn("failed to publish game recorded event", zap.Error(err))
		}
	}

	return toRecordGameResult(persisted), nil
}

// ExecuteWithContext 在調用者的事務中新增（不發布事件）
func (uc *RecordGameUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	cmd RecordGameCommand,
) (*RecordGameResult, error) {
	persisted, err := uc.appendRecord(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return toRecordGameResult(persisted), nil
}

// appendRecord 驗證並寫入，返回帶有流水號的記錄
func (uc *RecordGameUseCase) appendRecord(
	ctx shared.TransactionContext,
	cmd RecordGameCommand,
) (*mahjong.GameRecord, error) {
	active, err := uc.table.ActiveTable()
	if err != nil {
		return nil, fmt.Errorf("no active table: %w", err)
	}

	record, err := mahjong.NewGameRecordFromSubmission(active, mahjong.Submission{
		Winner:  cmd.Winner,
		Loser:   cmd.Loser,
		WinType: cmd.WinType,
		Points:  cmd.Points,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid submission: %w", err)
	}

	id, err := uc.repo.Append(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to append game record: %w", err)
	}

	return mahjong.ReconstructGameRecord(id, record.Winner(), record.Losers(), record.WinType(), record.Points())
}

func toRecordGameResult(record *mahjong.GameRecord) *RecordGameResult {
	losers := make([]string, 0, 3)
	for _, l := range record.Losers() {
		losers = append(losers, l.String())
	}
	return &RecordGameResult{
		RecordID: record.ID(),
		Winner:   record.Winner().String(),
		Losers:   losers,
		WinType:  record.WinType().String(),
		Points:   record.Points(),
	}
}
