package mahjong

// ===========================
// Roster 玩家名單
// ===========================

// DefaultRosterNames 預設玩家名單
var DefaultRosterNames = []string{"NEL", "WAI", "CAM", "BOS", "LIL", "LIS", "AMA", "JEN"}

// Roster 去重、排序的玩家集合（僅存在於記憶體）
//
// 生命週期：
// - Add 新增玩家
// - Reset 重置為預設名單（唯一的移除方式）
type Roster struct {
	players map[Player]struct{}
}

// NewRoster 以指定名單建立 Roster
// 名單為空時使用 DefaultRosterNames
func NewRoster(names []string) (*Roster, error) {
	if len(names) == 0 {
		names = DefaultRosterNames
	}

	r := &Roster{players: make(map[Player]struct{}, len(names))}
	for _, name := range names {
		if _, err := r.Add(name); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewDefaultRoster 建立預設名單
func NewDefaultRoster() *Roster {
	r, _ := NewRoster(DefaultRosterNames)
	return r
}

// Add 新增玩家（名稱正規化，重複新增為 no-op）
func (r *Roster) Add(name string) (Player, error) {
	p, err := NewPlayer(name)
	if err != nil {
		return Player{}, err
	}
	r.players[p] = struct{}{}
	return p, nil
}

// Reset 重置為預設名單
func (r *Roster) Reset() {
	r.players = make(map[Player]struct{}, len(DefaultRosterNames))
	for _, name := range DefaultRosterNames {
		r.players[MustPlayer(name)] = struct{}{}
	}
}

// Contains 判斷玩家是否在名單中
func (r *Roster) Contains(p Player) bool {
	_, ok := r.players[p]
	return ok
}

// Players 返回字典序排序的玩家列表
func (r *Roster) Players() []Player {
	out := make([]Player, 0, len(r.players))
	for p := range r.players {
		out = append(out, p)
	}
	sortPlayers(out)
	return out
}

// Len 名單人數
func (r *Roster) Len() int {
	return len(r.players)
}

// ===========================
// ActivePlayers 當前牌桌
// ===========================

// TablePlayers 一張牌桌的人數
const TablePlayers = 4

// ActivePlayers 當前牌桌的四位玩家
//
// 不變條件：
// - 恰好四位
// - 互不相同
// - 皆在 Roster 中
//
// 保留選擇順序，自摸時的三位輸家依此順序填入 loser1..loser3
type ActivePlayers struct {
	players [TablePlayers]Player
}

// NewActivePlayers 從名單中選出當前牌桌
func NewActivePlayers(roster *Roster, names []string) (ActivePlayers, error) {
	if len(names) != TablePlayers {
		return ActivePlayers{}, ErrInvalidActivePlayers.WithContext(
			"selected", len(names),
		)
	}

	var active ActivePlayers
	seen := make(map[Player]struct{}, TablePlayers)
	for i, name := range names {
		p, err := NewPlayer(name)
		if err != nil {
			return ActivePlayers{}, ErrInvalidActivePlayers.WithCause(err)
		}
		if _, dup := seen[p]; dup {
			return ActivePlayers{}, ErrInvalidActivePlayers.WithContext(
				"player", p.String(),
				"reason", "duplicate selection",
			)
		}
		if roster != nil && !roster.Contains(p) {
			return ActivePlayers{}, ErrInvalidActivePlayers.WithContext(
				"player", p.String(),
				"reason", "not in roster",
			)
		}
		seen[p] = struct{}{}
		active.players[i] = p
	}
	return active, nil
}

// Players 返回四位玩家（選擇順序）
func (a ActivePlayers) Players() []Player {
	out := make([]Player, TablePlayers)
	copy(out, a.players[:])
	return out
}

// Contains 判斷玩家是否在牌桌上
func (a ActivePlayers) Contains(p Player) bool {
	for _, ap := range a.players {
		if ap.Equals(p) {
			return true
		}
	}
	return false
}

// IsZero 尚未選擇牌桌
func (a ActivePlayers) IsZero() bool {
	return a.players[0].IsZero()
}

// Opponents 返回贏家以外的三位玩家（保持選擇順序）
func (a ActivePlayers) Opponents(winner Player) ([]Player, bool) {
	if !a.Contains(winner) {
		return nil, false
	}
	out := make([]Player, 0, TablePlayers-1)
	for _, p := range a.players {
		if !p.Equals(winner) {
			out = append(out, p)
		}
	}
	return out, true
}
