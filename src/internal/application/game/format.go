package game

import (
	"fmt"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount 報表金額格式
//
//	 10.8    → "+$10.80"
//	 -3.6    → "-$3.60"
//	 1234.5  → "+$1,234.50"
//	 0       → "$0.00"
//
// 先捨入到兩位小數再決定正負號，-0.001 顯示為 "$0.00"
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(mahjong.DisplayPlaces)

	sign := ""
	switch rounded.Sign() {
	case 1:
		sign = "+"
	case -1:
		sign = "-"
	}

	abs := rounded.Abs()
	whole := abs.IntPart()
	cents := abs.Sub(decimal.NewFromInt(whole)).Shift(mahjong.DisplayPlaces).IntPart()

	return fmt.Sprintf("%s$%s.%02d", sign, printer.Sprintf("%d", whole), cents)
}

// FormatAwardValue 獎項數值：次數顯示整數，平均番數最多兩位小數
func FormatAwardValue(value decimal.Decimal) string {
	return value.Round(mahjong.DisplayPlaces).String()
}
