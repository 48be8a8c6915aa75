// Package numwords spells numbers and money amounts as Spanish words, the
// way amounts are written out in contracts and rulings.
package numwords

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Max is the first number Spell does not handle: one thousand billion
// (long scale).
const Max = 1_000_000_000_000_000

// ErrRange is returned for numbers outside (-Max, Max) and for negative or
// non-finite amounts.
var ErrRange = errors.New("numwords: number out of range")

// Unit names the currency in an amount.
type Unit struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

var (
	Colones = Unit{Singular: "colón", Plural: "colones"}
	Dollars = Unit{Singular: "dólar", Plural: "dólares"}
)

var (
	small = [...]string{
		"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
		"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
		"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
	}
	tens = [...]string{
		3: "treinta", 4: "cuarenta", 5: "cincuenta", 6: "sesenta",
		7: "setenta", 8: "ochenta", 9: "noventa",
	}
	hundreds = [...]string{
		1: "ciento", 2: "doscientos", 3: "trescientos", 4: "cuatrocientos", 5: "quinientos",
		6: "seiscientos", 7: "setecientos", 8: "ochocientos", 9: "novecientos",
	}
)

// Spell returns n in Spanish words, e.g. 1021 is "mil veintiuno".
func Spell(n int64) (string, error) {
	return spell(n, false)
}

// Amount returns v in words followed by the currency and the cents as a
// fraction, e.g. 21.5 colones is "veintiún colones con 50/100". Cents are
// rounded to the nearest hundredth.
func Amount(v float64, u Unit) (string, error) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrRange
	}
	cents := int64(math.Round(v * 100))
	whole, frac := cents/100, cents%100

	words, err := spell(whole, true)
	if err != nil {
		return "", err
	}
	name := u.Plural
	if whole == 1 {
		name = u.Singular
	}
	if whole != 0 && whole%1_000_000 == 0 {
		// un millón de colones
		name = "de " + name
	}
	return fmt.Sprintf("%s %s con %02d/100", words, name, frac), nil
}

// spell writes n; short drops the final "o" of uno, as required before a
// noun.
func spell(n int64, short bool) (string, error) {
	if n <= -Max || n >= Max {
		return "", ErrRange
	}
	if n < 0 {
		s, err := spell(-n, short)
		return "menos " + s, err
	}
	if n == 0 {
		return small[0], nil
	}

	billions, millions, rest := n/1_000_000_000_000, n/1_000_000%1_000_000, n%1_000_000
	var parts []string
	switch {
	case billions == 1:
		parts = append(parts, "un billón")
	case billions > 1:
		parts = append(parts, belowMillion(billions, true)+" billones")
	}
	switch {
	case millions == 1:
		parts = append(parts, "un millón")
	case millions > 1:
		parts = append(parts, belowMillion(millions, true)+" millones")
	}
	if rest > 0 {
		parts = append(parts, belowMillion(rest, short))
	}
	return strings.Join(parts, " "), nil
}

func belowMillion(n int64, short bool) string {
	thousands, rest := n/1000, n%1000
	var parts []string
	switch {
	case thousands == 1:
		parts = append(parts, "mil")
	case thousands > 1:
		parts = append(parts, belowThousand(thousands, true)+" mil")
	}
	if rest > 0 {
		parts = append(parts, belowThousand(rest, short))
	}
	return strings.Join(parts, " ")
}

func belowThousand(n int64, short bool) string {
	if n == 100 {
		return "cien"
	}
	h, rest := n/100, n%100
	var parts []string
	if h > 0 {
		parts = append(parts, hundreds[h])
	}
	if rest > 0 {
		parts = append(parts, belowHundred(rest, short))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int64, short bool) string {
	if n < 30 {
		switch {
		case short && n == 1:
			return "un"
		case short && n == 21:
			return "veintiún"
		}
		return small[n]
	}
	t, u := n/10, n%10
	if u == 0 {
		return tens[t]
	}
	unit := small[u]
	if short && u == 1 {
		unit = "un"
	}
	return tens[t] + " y " + unit
}
