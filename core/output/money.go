package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders amount with its currency code, e.g. "USD 1,250.00"
func FormatMoney(amount decimal.Decimal, code string) string {
	return code + " " + FormatAmount(amount, code)
}

// FormatAmount rounds amount to the currency's standard scale and renders it
// with grouping. Unknown currencies fall back to two decimals. Digits come
// from the decimal itself; only the integer part goes through the printer.
func FormatAmount(amount decimal.Decimal, code string) string {
	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
	}

	rounded := amount.Round(int32(scale))
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(int32(scale)), ".")
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = printer.Sprint(number.Decimal(n))
	}

	out := whole
	if frac != "" {
		out += "." + frac
	}
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// FormatAdder renders an adder with an explicit sign; zero renders as "-"
func FormatAdder(amount decimal.Decimal, code string) string {
	switch {
	case amount.IsZero():
		return "-"
	case amount.IsPositive():
		return "+" + FormatAmount(amount, code)
	default:
		return FormatAmount(amount, code)
	}
}
