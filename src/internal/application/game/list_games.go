package game

import (
	"fmt"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
)

// GameView 牌局日誌的一列（Loser2 / Loser3 非自摸時為空字串）
type GameView struct {
	ID      int64
	Winner  string
	Loser1  string
	Loser2  string
	Loser3  string
	WinType string
	Points  int
}

// ListGamesResult 牌局列表（依流水號遞增）
type ListGamesResult struct {
	Games []GameView
}

// ListGamesUseCase 列出全部牌局
type ListGamesUseCase struct {
	repo mahjong.GameRecordRepository
}

// NewListGamesUseCase 創建 Use Case 實例
func NewListGamesUseCase(repo mahjong.GameRecordRepository) *ListGamesUseCase {
	return &ListGamesUseCase{repo: repo}
}

// Execute 執行查詢
func (uc *ListGamesUseCase) Execute() (*ListGamesResult, error) {
	records, err := uc.repo.ListAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list game records: %w", err)
	}

	games := make([]GameView, 0, len(records))
	for _, r := range records {
		view := GameView{
			ID:      r.ID(),
			Winner:  r.Winner().String(),
			Loser1:  r.Loser1().String(),
			WinType: r.WinType().String(),
			Points:  r.Points(),
		}
		if l2, ok := r.Loser2(); ok {
			view.Loser2 = l2.String()
		}
		if l3, ok := r.Loser3(); ok {
			view.Loser3 = l3.String()
		}
		games = append(games, view)
	}
	return &ListGamesResult{Games: games}, nil
}
