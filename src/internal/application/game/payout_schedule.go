package game

import "github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"

// PayoutScheduleRow 賠率表一列，附帶套用目前倍率後的每家金額
type PayoutScheduleRow struct {
	Points         int
	SelfDraw       int64
	OutRight       int64
	SelfDrawAmount string
	OutRightAmount string
}

// GetPayoutScheduleResult 賠率表
type GetPayoutScheduleResult struct {
	Multiplier string
	Rows       []PayoutScheduleRow
}

// GetPayoutScheduleUseCase 顯示賠率表（設定頁）
type GetPayoutScheduleUseCase struct {
	schedule   mahjong.PayoutSchedule
	multiplier MultiplierProvider
}

// NewGetPayoutScheduleUseCase 創建 Use Case 實例
func NewGetPayoutScheduleUseCase(multiplier MultiplierProvider) *GetPayoutScheduleUseCase {
	return &GetPayoutScheduleUseCase{
		schedule:   mahjong.DefaultPayoutSchedule(),
		multiplier: multiplier,
	}
}

// Execute 執行查詢
func (uc *GetPayoutScheduleUseCase) Execute() *GetPayoutScheduleResult {
	m := uc.multiplier.Multiplier()
	rows := uc.schedule.Rows()

	out := &GetPayoutScheduleResult{
		Multiplier: m.String(),
		Rows:       make([]PayoutScheduleRow, 0, len(rows)),
	}
	for _, r := range rows {
		// Rows 只包含合法番數，不會出錯
		selfDraw, _ := uc.schedule.SelfDraw(r.Points)
		outRight, _ := uc.schedule.OutRight(r.Points)
		out.Rows = append(out.Rows, PayoutScheduleRow{
			Points:         r.Points,
			SelfDraw:       r.SelfDraw,
			OutRight:       r.OutRight,
			SelfDrawAmount: FormatAmount(m.Apply(selfDraw)),
			OutRightAmount: FormatAmount(m.Apply(outRight)),
		})
	}
	return out
}
