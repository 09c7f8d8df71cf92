// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var monthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the Spanish name for month 1..12, or "???" outside it.
func MonthName(month int) string {
	if month >= 1 && month <= len(monthNames) {
		return monthNames[month-1]
	}
	return "???"
}

// MonthAbbrev returns a three-letter month label for chart axes.
func MonthAbbrev(month int) string {
	name := []rune(MonthName(month))
	if len(name) > 3 {
		name = name[:3]
	}
	return string(name)
}

// FormatCurrency formats a dollar amount with comma separators and a fixed
// number of decimals, rounding half away from zero.
// e.g., (560, 2) -> "$560.00", (1234.5, 0) -> "$1,235"
func FormatCurrency(v float64, places int32) string {
	d := decimal.NewFromFloat(v).Round(places)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(places)
	intPart, frac, hasFrac := strings.Cut(fixed, ".")

	out := sign + "$" + groupDigits(intPart)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// FormatDeltaPercent formats a percent change with sign and one decimal.
// Gains carry an explicit "+" ("+7.7%", not "7.7%").
// ok=false (undefined change) renders as "n/a".
func FormatDeltaPercent(pct float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	// avoid "-0.0%" for tiny negative rounding noise
	if pct > -0.05 && pct < 0 {
		pct = 0
	}
	return fmt.Sprintf("%+.1f%%", pct)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(strconv.FormatInt(n, 10))
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// Slug returns a lowercase ASCII key for a display name, folding accents.
// e.g., "Cámaras y Fotografía" -> "camaras-y-fotografia"
func Slug(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
