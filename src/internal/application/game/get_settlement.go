package game

import (
	"fmt"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MessageNoGames 沒有任何牌局時的提示
const MessageNoGames = "No games recorded"

// GetSettlementQuery 結算查詢
//
// Multiplier 留空時使用目前生效的倍率
type GetSettlementQuery struct {
	Multiplier string
}

// BalanceView 一位玩家的結算列
type BalanceView struct {
	Player  string
	Amount  decimal.Decimal // 精確值
	Display string          // 例如 "+$10.80"
}

// GetSettlementResult 結算結果
type GetSettlementResult struct {
	NoGames    bool
	Games      int
	Multiplier string
	Balances   []BalanceView
}

// GetSettlementUseCase 讀取全部牌局並計算每位玩家的淨輸贏
type GetSettlementUseCase struct {
	repo       mahjong.GameRecordRepository
	settlement *mahjong.SettlementService
	schedule   mahjong.PayoutSchedule
	multiplier MultiplierProvider
}

// NewGetSettlementUseCase 創建 Use Case 實例
func NewGetSettlementUseCase(
	repo mahjong.GameRecordRepository,
	multiplier MultiplierProvider,
) *GetSettlementUseCase {
	return &GetSettlementUseCase{
		repo:       repo,
		settlement: mahjong.NewSettlementService(nil),
		schedule:   mahjong.DefaultPayoutSchedule(),
		multiplier: multiplier,
	}
}

// Execute 執行結算
func (uc *GetSettlementUseCase) Execute(query GetSettlementQuery) (*GetSettlementResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行結算（ctx 可為 nil）
//
// 錯誤處理：
// - ErrInvalidMultiplier: 查詢指定的倍率不合法
// - ErrStoreUnavailable: 讀取失敗
// - ErrInvalidRecord: 日誌中有無法計分的記錄
func (uc *GetSettlementUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query GetSettlementQuery,
) (*GetSettlementResult, error) {
	multiplier := uc.multiplier.Multiplier()
	if query.Multiplier != "" {
		m, err := mahjong.ParseMultiplier(query.Multiplier)
		if err != nil {
			return nil, fmt.Errorf("invalid multiplier: %w", err)
		}
		multiplier = m
	}

	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list game records: %w", err)
	}

	settlement, err := uc.settlement.Settle(records, uc.schedule, multiplier)
	if err != nil {
		return nil, fmt.Errorf("failed to settle: %w", err)
	}

	result := &GetSettlementResult{
		NoGames:    settlement.IsEmpty(),
		Games:      settlement.Games(),
		Multiplier: multiplier.String(),
		Balances:   make([]BalanceView, 0, len(settlement.Balances())),
	}
	for _, b := range settlement.Balances() {
		result.Balances = append(result.Balances, BalanceView{
			Player:  b.Player.String(),
			Amount:  b.Amount,
			Display: FormatAmount(b.Amount),
		})
	}
	return result, nil
}
