package mahjong

import (
	"github.com/shopspring/decimal"
)

// ===========================
// PayoutSchedule 番數賠率表
// ===========================

// 番數範圍
const (
	MinPoints = 3
	MaxPoints = 10
)

// PayoutSchedule 番數 → 基本賠付
//
// 以 points-MinPoints 作為位置索引，兩欄：
// - SelfDraw：自摸 / 包自摸 的每家基本賠付
// - OutRight：出銃 的基本賠付
type PayoutSchedule struct {
	selfDraw [MaxPoints - MinPoints + 1]int64
	outRight [MaxPoints - MinPoints + 1]int64
}

// PayoutRow 賠率表的一列（供顯示）
type PayoutRow struct {
	Points   int
	SelfDraw int64
	OutRight int64
}

// DefaultPayoutSchedule 預設賠率表（不可修改）
func DefaultPayoutSchedule() PayoutSchedule {
	return PayoutSchedule{
		selfDraw: [...]int64{4, 8, 12, 16, 24, 32, 48, 64},
		outRight: [...]int64{8, 16, 24, 32, 48, 64, 96, 128},
	}
}

// Covers 判斷番數是否在賠率表範圍內
func (s PayoutSchedule) Covers(points int) bool {
	return points >= MinPoints && points <= MaxPoints
}

// SelfDraw 自摸基本賠付
func (s PayoutSchedule) SelfDraw(points int) (decimal.Decimal, error) {
	if !s.Covers(points) {
		return decimal.Zero, errPointsOutOfRange(points)
	}
	return decimal.NewFromInt(s.selfDraw[points-MinPoints]), nil
}

// OutRight 出銃基本賠付
func (s PayoutSchedule) OutRight(points int) (decimal.Decimal, error) {
	if !s.Covers(points) {
		return decimal.Zero, errPointsOutOfRange(points)
	}
	return decimal.NewFromInt(s.outRight[points-MinPoints]), nil
}

// Rows 返回整張賠率表
func (s PayoutSchedule) Rows() []PayoutRow {
	rows := make([]PayoutRow, 0, len(s.selfDraw))
	for i := range s.selfDraw {
		rows = append(rows, PayoutRow{
			Points:   i + MinPoints,
			SelfDraw: s.selfDraw[i],
			OutRight: s.outRight[i],
		})
	}
	return rows
}

func errPointsOutOfRange(points int) error {
	return ErrInvalidRecord.WithContext(
		"rule", "points must be between 3 and 10",
		"points", points,
	)
}

// ===========================
// Multiplier 倍率
// ===========================

// Multiplier 套用在每一筆賠付上的倍率
type Multiplier struct {
	value decimal.Decimal
}

// AllowedMultipliers 可選倍率
var AllowedMultipliers = []decimal.Decimal{
	decimal.RequireFromString("0.10"),
	decimal.RequireFromString("0.15"),
	decimal.RequireFromString("0.20"),
}

// DefaultMultiplier 預設倍率 0.15
func DefaultMultiplier() Multiplier {
	return Multiplier{value: decimal.RequireFromString("0.15")}
}

// NewMultiplier 建立倍率（必須為可選倍率之一）
func NewMultiplier(value decimal.Decimal) (Multiplier, error) {
	for _, allowed := range AllowedMultipliers {
		if value.Equal(allowed) {
			return Multiplier{value: value}, nil
		}
	}
	return Multiplier{}, ErrInvalidMultiplier.WithContext("multiplier", value.String())
}

// ParseMultiplier 從字串解析倍率
func ParseMultiplier(s string) (Multiplier, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Multiplier{}, ErrInvalidMultiplier.WithContext("multiplier", s).WithCause(err)
	}
	return NewMultiplier(value)
}

// Value 倍率數值
func (m Multiplier) Value() decimal.Decimal {
	return m.value
}

// String 顯示格式，例如 "$0.15"
func (m Multiplier) String() string {
	return "$" + m.value.StringFixed(2)
}

// Apply 基本賠付 × 倍率（不做任何捨入）
func (m Multiplier) Apply(base decimal.Decimal) decimal.Decimal {
	return base.Mul(m.value)
}
