package mahjong

import (
	"github.com/shopspring/decimal"
)

// LedgerEntry 單局結算中一位玩家的輸贏（派生值，不持久化）
type LedgerEntry struct {
	Player Player
	Amount decimal.Decimal
}

// ===========================
// ScoringService 領域服務
// ===========================

// ScoringService 單局計分服務
//
// 無狀態：賠率表與倍率皆由參數傳入
type ScoringService struct{}

// NewScoringService 建構函數
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

var three = decimal.NewFromInt(3)

// Score 計算一局的輸贏分錄
//
// 業務規則：
// - 自摸：base = SelfDraw[p] × m，贏家 +3×base，三位輸家各 -base
// - 包自摸：base = SelfDraw[p] × m，贏家 +3×base，被包者 -3×base
// - 出銃：base = OutRight[p] × m，贏家 +base，放銃者 -base
//
// 分錄總和恆為 0（精確 decimal 運算，不做中間捨入）
//
// 錯誤：番數超出賠率表或胡牌方式未知 → ErrInvalidRecord
func (s *ScoringService) Score(
	record *GameRecord,
	schedule PayoutSchedule,
	multiplier Multiplier,
) ([]LedgerEntry, error) {
	if record == nil {
		return nil, ErrInvalidRecord.WithContext("rule", "record is nil")
	}

	switch record.WinType() {
	case WinTypeSelfDraw:
		base, err := schedule.SelfDraw(record.Points())
		if err != nil {
			return nil, err
		}
		base = multiplier.Apply(base)

		entries := make([]LedgerEntry, 0, 4)
		entries = append(entries, LedgerEntry{Player: record.Winner(), Amount: base.Mul(three)})
		for _, l := range record.Losers() {
			entries = append(entries, LedgerEntry{Player: l, Amount: base.Neg()})
		}
		return entries, nil

	case WinTypeSelfDrawCharged:
		base, err := schedule.SelfDraw(record.Points())
		if err != nil {
			return nil, err
		}
		base = multiplier.Apply(base)

		return []LedgerEntry{
			{Player: record.Winner(), Amount: base.Mul(three)},
			{Player: record.Loser1(), Amount: base.Mul(three).Neg()},
		}, nil

	case WinTypeDiscard:
		base, err := schedule.OutRight(record.Points())
		if err != nil {
			return nil, err
		}
		base = multiplier.Apply(base)

		return []LedgerEntry{
			{Player: record.Winner(), Amount: base},
			{Player: record.Loser1(), Amount: base.Neg()},
		}, nil

	default:
		return nil, ErrInvalidRecord.WithContext(
			"rule", "unknown win type",
			"record_id", record.ID(),
		)
	}
}

// SumEntries 分錄總和
func SumEntries(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
