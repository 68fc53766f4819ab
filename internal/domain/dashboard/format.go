package dashboard

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback display strings.
const (
	NotAvailable = "N/A"
	Unknown      = "Unknown"
)

// TitleCase renders a store enum such as "in_progress" or "PAST-DUE" as
// "In Progress" / "Past Due". Empty input renders as Unknown.
func TitleCase(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return Unknown
	}
	return cases.Title(language.English).String(s)
}

// orDefault returns s, or fallback when s is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// joinPresent joins the non-empty parts with sep.
func joinPresent(sep string, parts ...string) string {
	present := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}

// FormatAmount renders an amount in minor units (cents) with its ISO currency
// code, for example "USD 1,250.00". An unknown or empty code renders the
// number alone.
func FormatAmount(minor int64, code string) string {
	p := message.NewPrinter(language.English)
	value := p.Sprintf("%.2f", float64(minor)/100)

	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return value
	}
	return unit.String() + " " + value
}

// formatScore renders a numeric score without trailing zeros.
func formatScore(v float64, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
