package layout

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormat renders money amounts for table cells.
type CurrencyFormat struct {
	Locale string `yaml:"locale"` // BCP 47 tag used for digit grouping, e.g. "es-CR"
	Code   string `yaml:"code"`   // ISO 4217 code, e.g. "CRC"
	Symbol string `yaml:"symbol"` // printed before the amount; the ISO code when empty
}

// DefaultCurrency formats colones with Costa Rican grouping.
func DefaultCurrency() CurrencyFormat {
	return CurrencyFormat{Locale: "es-CR", Code: "CRC", Symbol: "¢"}
}

// Format renders v with the locale's grouping and the currency's standard
// number of decimals.
func (f CurrencyFormat) Format(v float64) string {
	tag, err := language.Parse(f.Locale)
	if err != nil {
		tag = language.Spanish
	}

	scale := 2
	symbol := f.Symbol
	if unit, err := currency.ParseISO(f.Code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
		if symbol == "" {
			symbol = unit.String()
		}
	}

	p := message.NewPrinter(tag)
	amount := p.Sprintf(fmt.Sprintf("%%.%df", scale), v)
	if symbol == "" {
		return amount
	}
	return symbol + " " + amount
}
