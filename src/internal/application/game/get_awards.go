package game

import (
	"fmt"
	"strings"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
)

// MessageNoData 獎項無資料時的顯示
const MessageNoData = "no data"

// AwardView 一個獎項的顯示資料
type AwardView struct {
	Title   string
	Metric  string
	HasData bool
	Value   string
	Holders []string
}

// Display 例如 "Self Draw King/Queen: A (Games won: 2)"
func (v AwardView) Display() string {
	if !v.HasData {
		return fmt.Sprintf("%s: %s", v.Title, MessageNoData)
	}
	return fmt.Sprintf("%s: %s (%s: %s)", v.Title, strings.Join(v.Holders, ", "), v.Metric, v.Value)
}

// GetAwardsResult 獎項結果（固定五項，依顯示順序）
type GetAwardsResult struct {
	NoGames bool
	Awards  []AwardView
}

// GetAwardsUseCase 計算五個獎項
type GetAwardsUseCase struct {
	repo       mahjong.GameRecordRepository
	calculator *mahjong.AwardCalculator
}

// NewGetAwardsUseCase 創建 Use Case 實例
func NewGetAwardsUseCase(repo mahjong.GameRecordRepository) *GetAwardsUseCase {
	return &GetAwardsUseCase{
		repo:       repo,
		calculator: mahjong.NewAwardCalculator(),
	}
}

// Execute 執行查詢
//
// 日誌為空時五個獎項皆為「無資料」，不是錯誤
func (uc *GetAwardsUseCase) Execute() (*GetAwardsResult, error) {
	records, err := uc.repo.ListAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list game records: %w", err)
	}

	results := uc.calculator.All(records)
	out := &GetAwardsResult{
		NoGames: len(records) == 0,
		Awards:  make([]AwardView, 0, len(results)),
	}
	for _, r := range results {
		view := AwardView{
			Title:   r.Kind.Title(),
			Metric:  r.Kind.Metric(),
			HasData: r.HasData(),
			Holders: r.Holders,
		}
		if r.HasData() {
			view.Value = FormatAwardValue(r.Value)
		}
		out.Awards = append(out.Awards, view)
	}
	return out, nil
}
