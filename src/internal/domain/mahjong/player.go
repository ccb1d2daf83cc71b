package mahjong

import (
	"sort"
	"strings"
)

// ===========================
// Player Value Object
// ===========================

// Player 玩家值對象
//
// 業務規則：
// 1. 名稱去除前後空白
// 2. 名稱統一轉為大寫
// 3. 不可為空字串
//
// Player 可直接作為 map key 使用（值相等）
type Player struct {
	name string
}

// NewPlayer 創建玩家值對象（Checked Constructor）
//
// 錯誤範例：
// - ""    → ErrInvalidPlayer
// - "   " → ErrInvalidPlayer
func NewPlayer(name string) (Player, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if normalized == "" {
		return Player{}, ErrInvalidPlayer.WithContext("name", name)
	}
	return Player{name: normalized}, nil
}

// MustPlayer 僅用於常量名單與測試
func MustPlayer(name string) Player {
	p, err := NewPlayer(name)
	if err != nil {
		panic(err)
	}
	return p
}

// String 返回正規化後的名稱
func (p Player) String() string {
	return p.name
}

// Equals 比較兩個玩家是否相同
func (p Player) Equals(other Player) bool {
	return p.name == other.name
}

// IsZero 檢查是否為零值（未填寫的欄位）
func (p Player) IsZero() bool {
	return p.name == ""
}

// sortPlayers 依名稱字典序排序（原地）
func sortPlayers(players []Player) {
	sort.Slice(players, func(i, j int) bool {
		return players[i].name < players[j].name
	})
}
