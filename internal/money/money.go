// Package money renders decimal amounts in the "$#,##0.00" form used on
// receipts, exports and outbound messages.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()

	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
