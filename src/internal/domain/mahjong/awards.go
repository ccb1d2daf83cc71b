package mahjong

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ===========================
// Award 獎項定義
// ===========================

// AwardKind 獎項種類
type AwardKind int

const (
	// AwardInnocentBystander 自摸時最常被連帶支付的玩家
	AwardInnocentBystander AwardKind = iota + 1
	// AwardArchNemesis 非自摸牌局中最常交手（贏 / 輸）的一對玩家
	AwardArchNemesis
	// AwardGoBigOrGoHome 胡牌平均番數最高
	AwardGoBigOrGoHome
	// AwardCharityChampion 非自摸牌局中最常擔任 loser1
	AwardCharityChampion
	// AwardSelfDrawKing 自摸次數最多
	AwardSelfDrawKing
)

// PairSeparator 宿敵組合的名稱分隔符
const PairSeparator = "-"

// Title 獎項名稱
func (k AwardKind) Title() string {
	switch k {
	case AwardInnocentBystander:
		return "Innocent Bystander"
	case AwardArchNemesis:
		return "Arch Nemesis"
	case AwardGoBigOrGoHome:
		return "Go Big or Go Home"
	case AwardCharityChampion:
		return "Charity Champion"
	case AwardSelfDrawKing:
		return "Self Draw King/Queen"
	default:
		return "Unknown Award"
	}
}

// Metric 獎項數值的意義
func (k AwardKind) Metric() string {
	switch k {
	case AwardInnocentBystander:
		return "Number of Games"
	case AwardArchNemesis:
		return "Number of Games"
	case AwardGoBigOrGoHome:
		return "Average Points"
	case AwardCharityChampion:
		return "Number of Games"
	case AwardSelfDrawKing:
		return "Games won"
	default:
		return ""
	}
}

// AllAwardKinds 顯示順序
var AllAwardKinds = []AwardKind{
	AwardInnocentBystander,
	AwardArchNemesis,
	AwardGoBigOrGoHome,
	AwardCharityChampion,
	AwardSelfDrawKing,
}

// AwardResult 獎項結果
//
// Holders 包含所有並列最高者（字典序），不做任何 tie-break
// 無資料時 HasData() 為 false，Value 為 0，Holders 為空
type AwardResult struct {
	Kind    AwardKind
	Value   decimal.Decimal
	Holders []string
}

// HasData 是否有足夠資料產生獎項
func (r AwardResult) HasData() bool {
	return len(r.Holders) > 0
}

func noData(kind AwardKind) AwardResult {
	return AwardResult{Kind: kind, Value: decimal.Zero}
}

// ===========================
// AwardCalculator 領域服務
// ===========================

// AwardCalculator 五個互相獨立的統計查詢
type AwardCalculator struct{}

// NewAwardCalculator 建構函數
func NewAwardCalculator() *AwardCalculator {
	return &AwardCalculator{}
}

// InnocentBystander 自摸牌局中，每位玩家出現在任一輸家欄位的次數
func (c *AwardCalculator) InnocentBystander(records []*GameRecord) AwardResult {
	t := newTally()
	for _, r := range records {
		if !r.WinType().IsSelfDraw() {
			continue
		}
		for _, l := range r.Losers() {
			t.inc(l.String())
		}
	}
	return t.best(AwardInnocentBystander)
}

// ArchNemesis 非自摸牌局中 (winner, loser1) 的無序組合出現次數
// 組合名稱以字典序較小者在前，例如 "AMA-BOS"
func (c *AwardCalculator) ArchNemesis(records []*GameRecord) AwardResult {
	t := newTally()
	for _, r := range records {
		if r.WinType().IsSelfDraw() {
			continue
		}
		t.inc(PairName(r.Winner(), r.Loser1()))
	}
	return t.best(AwardArchNemesis)
}

// GoBigOrGoHome 每位贏家的平均番數（番數，不是金額）
func (c *AwardCalculator) GoBigOrGoHome(records []*GameRecord) AwardResult {
	sums := make(map[string]int64)
	counts := make(map[string]int64)
	for _, r := range records {
		name := r.Winner().String()
		sums[name] += int64(r.Points())
		counts[name]++
	}

	means := make(map[string]decimal.Decimal, len(sums))
	for name, sum := range sums {
		means[name] = decimal.NewFromInt(sum).Div(decimal.NewFromInt(counts[name]))
	}
	return bestOf(AwardGoBigOrGoHome, means)
}

// CharityChampion 非自摸牌局中每位玩家擔任 loser1 的次數
func (c *AwardCalculator) CharityChampion(records []*GameRecord) AwardResult {
	t := newTally()
	for _, r := range records {
		if r.WinType().IsSelfDraw() {
			continue
		}
		t.inc(r.Loser1().String())
	}
	return t.best(AwardCharityChampion)
}

// SelfDrawKing 自摸牌局中每位贏家的胡牌次數
func (c *AwardCalculator) SelfDrawKing(records []*GameRecord) AwardResult {
	t := newTally()
	for _, r := range records {
		if !r.WinType().IsSelfDraw() {
			continue
		}
		t.inc(r.Winner().String())
	}
	return t.best(AwardSelfDrawKing)
}

// All 依 AllAwardKinds 順序計算全部獎項
func (c *AwardCalculator) All(records []*GameRecord) []AwardResult {
	out := make([]AwardResult, 0, len(AllAwardKinds))
	for _, kind := range AllAwardKinds {
		out = append(out, c.Calculate(kind, records))
	}
	return out
}

// Calculate 計算指定獎項
func (c *AwardCalculator) Calculate(kind AwardKind, records []*GameRecord) AwardResult {
	switch kind {
	case AwardInnocentBystander:
		return c.InnocentBystander(records)
	case AwardArchNemesis:
		return c.ArchNemesis(records)
	case AwardGoBigOrGoHome:
		return c.GoBigOrGoHome(records)
	case AwardCharityChampion:
		return c.CharityChampion(records)
	case AwardSelfDrawKing:
		return c.SelfDrawKing(records)
	default:
		return noData(kind)
	}
}

// PairName 兩位玩家的標準組合名稱
func PairName(a, b Player) string {
	x, y := a.String(), b.String()
	if y < x {
		x, y = y, x
	}
	return x + PairSeparator + y
}

// ===========================
// 計數輔助
// ===========================

type tally map[string]int64

func newTally() tally {
	return make(tally)
}

func (t tally) inc(key string) {
	t[key]++
}

func (t tally) best(kind AwardKind) AwardResult {
	values := make(map[string]decimal.Decimal, len(t))
	for k, n := range t {
		values[k] = decimal.NewFromInt(n)
	}
	return bestOf(kind, values)
}

// bestOf 找出最大值及所有並列者（字典序）
func bestOf(kind AwardKind, values map[string]decimal.Decimal) AwardResult {
	if len(values) == 0 {
		return noData(kind)
	}

	var (
		top     decimal.Decimal
		holders []string
	)
	for name, v := range values {
		switch {
		case holders == nil || v.GreaterThan(top):
			top = v
			holders = []string{name}
		case v.Equal(top):
			holders = append(holders, name)
		}
	}
	sort.Strings(holders)

	return AwardResult{Kind: kind, Value: top, Holders: holders}
}
