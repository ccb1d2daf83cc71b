package mahjong

import "strings"

// WinType 胡牌方式
type WinType int

const (
	// WinTypeUnknown 零值，未填寫
	WinTypeUnknown WinType = iota
	// WinTypeDiscard 出銃：單一放銃者支付
	WinTypeDiscard
	// WinTypeSelfDrawCharged 包自摸：自摸，但由一位玩家全額承擔
	WinTypeSelfDrawCharged
	// WinTypeSelfDraw 自摸：其餘三家各自支付
	WinTypeSelfDraw
)

// 資料庫與介面使用的標籤（與原始資料表相容）
const (
	labelDiscard         = "出銃"
	labelSelfDrawCharged = "包自摸"
	labelSelfDraw        = "自摸"
)

// WinTypes 所有合法的胡牌方式（介面顯示順序）
var WinTypes = []WinType{WinTypeDiscard, WinTypeSelfDrawCharged, WinTypeSelfDraw}

// ParseWinType 解析胡牌方式
//
// 接受中文標籤或英文名稱（不分大小寫）：
// - "出銃" / "discard"
// - "包自摸" / "selfdrawcharged" / "self_draw_charged"
// - "自摸" / "selfdraw" / "self_draw"
func ParseWinType(s string) (WinType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case labelDiscard, "discard":
		return WinTypeDiscard, nil
	case labelSelfDrawCharged, "selfdrawcharged", "self_draw_charged":
		return WinTypeSelfDrawCharged, nil
	case labelSelfDraw, "selfdraw", "self_draw":
		return WinTypeSelfDraw, nil
	case "":
		return WinTypeUnknown, ErrInvalidRecord.WithContext(
			"rule", "Win Type cannot be empty",
		)
	default:
		return WinTypeUnknown, ErrInvalidRecord.WithContext(
			"rule", "unknown win type",
			"win_type", s,
		)
	}
}

// String 返回中文標籤
func (w WinType) String() string {
	switch w {
	case WinTypeDiscard:
		return labelDiscard
	case WinTypeSelfDrawCharged:
		return labelSelfDrawCharged
	case WinTypeSelfDraw:
		return labelSelfDraw
	default:
		return "unknown"
	}
}

// IsValid 是否為已知的胡牌方式
func (w WinType) IsValid() bool {
	return w == WinTypeDiscard || w == WinTypeSelfDrawCharged || w == WinTypeSelfDraw
}

// IsSelfDraw 是否為三家支付的自摸
func (w WinType) IsSelfDraw() bool {
	return w == WinTypeSelfDraw
}
