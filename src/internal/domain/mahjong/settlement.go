package mahjong

import (
	"github.com/shopspring/decimal"
)

// DisplayPlaces 報表顯示的小數位數
const DisplayPlaces = 2

// PlayerBalance 一位玩家的淨輸贏
type PlayerBalance struct {
	Player Player
	Amount decimal.Decimal
}

// Rounded 顯示用金額（只在報表邊界捨入）
func (b PlayerBalance) Rounded() decimal.Decimal {
	return b.Amount.Round(DisplayPlaces)
}

// ===========================
// Settlement 結算結果
// ===========================

// Settlement 全部牌局的累計結算
//
// 只包含至少出現在一筆記錄中的玩家
type Settlement struct {
	balances map[Player]decimal.Decimal
	games    int
}

// Balance 查詢玩家淨輸贏（未出現的玩家返回 false）
func (s *Settlement) Balance(p Player) (decimal.Decimal, bool) {
	v, ok := s.balances[p]
	return v, ok
}

// Balances 依玩家名稱字典序排列的淨輸贏
func (s *Settlement) Balances() []PlayerBalance {
	players := make([]Player, 0, len(s.balances))
	for p := range s.balances {
		players = append(players, p)
	}
	sortPlayers(players)

	out := make([]PlayerBalance, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerBalance{Player: p, Amount: s.balances[p]})
	}
	return out
}

// AsMap 玩家 → 淨輸贏（副本）
func (s *Settlement) AsMap() map[Player]decimal.Decimal {
	out := make(map[Player]decimal.Decimal, len(s.balances))
	for p, v := range s.balances {
		out[p] = v
	}
	return out
}

// Games 參與結算的牌局數
func (s *Settlement) Games() int {
	return s.games
}

// IsEmpty 沒有任何牌局（介面顯示 "No games recorded"）
func (s *Settlement) IsEmpty() bool {
	return s.games == 0
}

// Total 所有玩家淨輸贏總和（恆為 0）
func (s *Settlement) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s.balances {
		total = total.Add(v)
	}
	return total
}

// ===========================
// SettlementService 領域服務
// ===========================

// SettlementService 依序重播所有牌局並累加
type SettlementService struct {
	scoring *ScoringService
}

// NewSettlementService 建構函數
func NewSettlementService(scoring *ScoringService) *SettlementService {
	if scoring == nil {
		scoring = NewScoringService()
	}
	return &SettlementService{scoring: scoring}
}

// Settle 以倉儲順序重播每一筆記錄並累加每位玩家的分錄
//
// - 純函數：無副作用
// - 空輸入返回空結算（不是錯誤）
// - 任一記錄無法計分時返回 ErrInvalidRecord
func (s *SettlementService) Settle(
	records []*GameRecord,
	schedule PayoutSchedule,
	multiplier Multiplier,
) (*Settlement, error) {
	result := &Settlement{
		balances: make(map[Player]decimal.Decimal),
	}

	for _, record := range records {
		entries, err := s.scoring.Score(record, schedule, multiplier)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			result.balances[e.Player] = result.balances[e.Player].Add(e.Amount)
		}
		result.games++
	}

	return result, nil
}
