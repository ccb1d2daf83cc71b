package game

import "github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"

// TableProvider 提供當前牌桌（尚未選定時返回 ErrInvalidActivePlayers）
type TableProvider interface {
	ActiveTable() (mahjong.ActivePlayers, error)
}

// MultiplierProvider 提供目前生效的倍率
type MultiplierProvider interface {
	Multiplier() mahjong.Multiplier
}

// FixedMultiplier 固定倍率（測試與一次性指令使用）
type FixedMultiplier mahjong.Multiplier

// Multiplier 實現 MultiplierProvider
func (m FixedMultiplier) Multiplier() mahjong.Multiplier {
	return mahjong.Multiplier(m)
}
