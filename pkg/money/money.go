// Package money formatea montos en rupias (PKR) con separador de miles.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format devuelve "12,500" o "12,500.50" (sin decimales si el monto es entero).
func Format(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return printer.Sprintf("%d", d.IntPart())
	}
	return printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// PKR antepone el código de moneda.
func PKR(d decimal.Decimal) string {
	return "PKR " + Format(d)
}

// Percent formatea un porcentaje con dos decimales.
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
