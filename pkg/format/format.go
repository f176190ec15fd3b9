// Package format turns chart values into display strings.
//
// Number formats follow en-US conventions through golang.org/x/text, with
// go-humanize handling the short-scale split used by [Compact]. Date formats
// are fixed en-US layouts.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/matzehuels/loracharts/pkg/errors"
)

// ValueKind selects a number presentation.
type ValueKind string

const (
	Number     ValueKind = "number"
	Currency   ValueKind = "currency"
	Percentage ValueKind = "percentage"
	Compact    ValueKind = "compact"
)

// ValueKinds lists the supported kinds in display order.
var ValueKinds = []ValueKind{Number, Currency, Percentage, Compact}

// ParseValueKind validates s as a ValueKind. An empty string means Number.
func ParseValueKind(s string) (ValueKind, error) {
	k := ValueKind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return Number, nil
	}
	for _, known := range ValueKinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unknown value format %q (must be number, currency, percentage or compact)", s)
}

// FormatValue formats v for display. Unknown kinds format as Number.
//
//	number      1234.5   -> "1,234.5"   (0-2 fraction digits)
//	currency    1234.5   -> "$1,234.50" (USD)
//	percentage  0.256    -> "25.6%"     (value is a ratio)
//	compact     1234     -> "1.2K"
func FormatValue(v float64, kind ValueKind) string {
	switch kind {
	case Currency:
		return formatCurrency(v)
	case Percentage:
		return formatPercent(v)
	case Compact:
		return formatCompact(v)
	default:
		return formatDecimal(v)
	}
}

// FormatNumber formats v with the conventions of locale, applying opts
// (number.MaxFractionDigits, number.Scale, ...). Without options at most three
// fraction digits are shown. A malformed locale falls back to en-US.
func FormatNumber(v float64, locale string, opts ...number.Option) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	if len(opts) == 0 {
		opts = []number.Option{number.MaxFractionDigits(3)}
	}
	return message.NewPrinter(tag).Sprint(number.Decimal(v, opts...))
}

func formatDecimal(v float64) string {
	return FormatNumber(v, "en-US", number.MaxFractionDigits(2))
}

func formatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatDecimal(v)
	}
	sign := ""
	if v < 0 {
		sign = "-"
	}
	return sign + "$" + FormatNumber(math.Abs(v), "en-US", number.Scale(2))
}

func formatPercent(v float64) string {
	return formatDecimal(v*100) + "%"
}

// compactSuffixes is the en-US short scale; humanize's SI prefixes map onto it.
var compactSuffixes = []string{"", "K", "M", "B", "T"}

var siToCompact = map[string]int{"": 0, "k": 1, "M": 2, "G": 3, "T": 4}

func formatCompact(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatDecimal(v)
	}
	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)

	scaled, idx := abs, 0
	if abs >= 1000 {
		value, prefix := humanize.ComputeSI(abs)
		if i, ok := siToCompact[prefix]; ok {
			scaled, idx = value, i
		} else {
			// Past trillions the suffix stays T and the mantissa grows.
			scaled, idx = abs/1e12, len(compactSuffixes)-1
		}
	}

	rounded := roundCompact(scaled)
	if rounded >= 1000 && idx < len(compactSuffixes)-1 {
		rounded, idx = roundCompact(rounded/1000), idx+1
	}
	if rounded == 0 {
		sign = ""
	}
	return sign + strconv.FormatFloat(rounded, 'f', -1, 64) + compactSuffixes[idx]
}

// roundCompact keeps two significant digits for values below 10 and rounds
// everything else to an integer.
func roundCompact(v float64) float64 {
	if v >= 10 || v == 0 {
		return math.Round(v)
	}
	digits := math.Floor(math.Log10(v))
	scale := math.Pow(10, 1-digits)
	r := math.Round(v*scale) / scale
	if r >= 10 {
		return math.Round(r)
	}
	return r
}
