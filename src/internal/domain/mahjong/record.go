package mahjong

// ===========================
// GameRecord 實體
// ===========================

// GameRecord 一局牌的結果
//
// 不變條件：
// - points ∈ [MinPoints, MaxPoints]
// - winType 為已知的胡牌方式
// - 自摸：三個輸家欄位皆有值
// - 出銃 / 包自摸：只有 loser1 有值
// - winner 不等於任何已填寫的輸家，輸家之間互不相同
//
// id 由倉儲在寫入時分配（新建時為 0），之後不可變
type GameRecord struct {
	id      int64
	winner  Player
	losers  [3]Player
	winType WinType
	points  int
}

// NewGameRecord 創建尚未持久化的牌局記錄（Checked Constructor）
func NewGameRecord(winner Player, losers []Player, winType WinType, points int) (*GameRecord, error) {
	if len(losers) > 3 {
		return nil, ErrInvalidRecord.WithContext(
			"rule", "at most three losers",
			"losers", len(losers),
		)
	}

	r := &GameRecord{
		winner:  winner,
		winType: winType,
		points:  points,
	}
	copy(r.losers[:], losers)

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// ReconstructGameRecord 從持久化資料重建牌局記錄
// 重建時仍然檢查不變條件，資料庫中的損壞資料會返回 ErrInvalidRecord
func ReconstructGameRecord(id int64, winner Player, losers []Player, winType WinType, points int) (*GameRecord, error) {
	r, err := NewGameRecord(winner, losers, winType, points)
	if err != nil {
		return nil, err
	}
	r.id = id
	return r, nil
}

// validate 檢查所有不變條件
func (r *GameRecord) validate() error {
	if r.winner.IsZero() {
		return ErrInvalidRecord.WithContext("rule", "Winner cannot be empty")
	}
	if !r.winType.IsValid() {
		return ErrInvalidRecord.WithContext(
			"rule", "unknown win type",
			"win_type", int(r.winType),
		)
	}
	if r.points < MinPoints || r.points > MaxPoints {
		return errPointsOutOfRange(r.points)
	}

	want := 1
	if r.winType.IsSelfDraw() {
		want = 3
	}
	for i, l := range r.losers {
		if i < want && l.IsZero() {
			if i == 0 {
				return ErrInvalidRecord.WithContext("rule", "Loser cannot be nameless")
			}
			return ErrInvalidRecord.WithContext(
				"rule", "self draw requires three losers",
				"losers", i,
			)
		}
		if i >= want && !l.IsZero() {
			return ErrInvalidRecord.WithContext(
				"rule", "only self draw may populate loser2 and loser3",
				"win_type", r.winType.String(),
			)
		}
	}

	losers := r.Losers()
	for i, l := range losers {
		if l.Equals(r.winner) {
			return ErrInvalidRecord.WithContext(
				"rule", "Winner cannot have same name as Loser",
				"player", l.String(),
			)
		}
		for _, other := range losers[i+1:] {
			if l.Equals(other) {
				return ErrInvalidRecord.WithContext(
					"rule", "losers must be distinct",
					"player", l.String(),
				)
			}
		}
	}
	return nil
}

// ===========================
// 查詢方法
// ===========================

// ID 倉儲分配的流水號（未持久化時為 0）
func (r *GameRecord) ID() int64 {
	return r.id
}

// Winner 贏家
func (r *GameRecord) Winner() Player {
	return r.winner
}

// Loser1 第一輸家（所有胡牌方式皆有值）
func (r *GameRecord) Loser1() Player {
	return r.losers[0]
}

// Loser2 第二輸家（僅自摸）
func (r *GameRecord) Loser2() (Player, bool) {
	return r.losers[1], !r.losers[1].IsZero()
}

// Loser3 第三輸家（僅自摸）
func (r *GameRecord) Loser3() (Player, bool) {
	return r.losers[2], !r.losers[2].IsZero()
}

// Losers 已填寫的輸家（loser1..loser3 順序）
func (r *GameRecord) Losers() []Player {
	out := make([]Player, 0, 3)
	for _, l := range r.losers {
		if !l.IsZero() {
			out = append(out, l)
		}
	}
	return out
}

// WinType 胡牌方式
func (r *GameRecord) WinType() WinType {
	return r.winType
}

// Points 番數
func (r *GameRecord) Points() int {
	return r.points
}

// ===========================
// 提交（介面輸入 → GameRecord）
// ===========================

// Submission 介面提交的原始輸入
//
// Loser 在自摸時可留空（三位輸家由牌桌自動帶出）
// Points 為 0 表示未填寫
type Submission struct {
	Winner  string
	Loser   string
	WinType string
	Points  int
}

// NewGameRecordFromSubmission 驗證提交內容並建立牌局記錄
//
// 驗證順序：
// 1. 牌桌必須已選定四位玩家
// 2. Winner 不可為空
// 3. Winner 不可等於 Loser
// 4. Win Type 不可為空
// 5. Points 不可為空
// 6. 非自摸時 Loser 不可為空
// 7. Winner / Loser 必須在牌桌上
//
// 自摸：三位輸家 = 牌桌上贏家以外的玩家（保持選擇順序），忽略 Loser
func NewGameRecordFromSubmission(active ActivePlayers, sub Submission) (*GameRecord, error) {
	if active.IsZero() {
		return nil, ErrInvalidActivePlayers
	}

	winner, err := NewPlayer(sub.Winner)
	if err != nil {
		return nil, ErrInvalidRecord.WithContext("rule", "Winner cannot be empty")
	}

	loser, _ := NewPlayer(sub.Loser)
	if !loser.IsZero() && loser.Equals(winner) {
		return nil, ErrInvalidRecord.WithContext(
			"rule", "Winner cannot have same name as Loser",
			"player", winner.String(),
		)
	}

	winType, err := ParseWinType(sub.WinType)
	if err != nil {
		return nil, err
	}

	if sub.Points == 0 {
		return nil, ErrInvalidRecord.WithContext("rule", "Points cannot be empty")
	}

	if loser.IsZero() && !winType.IsSelfDraw() {
		return nil, ErrInvalidRecord.WithContext("rule", "Loser cannot be nameless")
	}

	opponents, ok := active.Opponents(winner)
	if !ok {
		return nil, ErrInvalidRecord.WithContext(
			"rule", "Winner must be an active player",
			"player", winner.String(),
		)
	}

	if winType.IsSelfDraw() {
		return NewGameRecord(winner, opponents, winType, sub.Points)
	}

	if !active.Contains(loser) {
		return nil, ErrInvalidRecord.WithContext(
			"rule", "Loser must be an active player",
			"player", loser.String(),
		)
	}
	return NewGameRecord(winner, []Player{loser}, winType, sub.Points)
}
