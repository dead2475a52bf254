// Package format holds the pt-BR value formatters applied at substitution
// time. Both formatters are pure and total: malformed input degrades to a
// fixed placeholder, never an error. Values are formatted exactly once, on
// the way out of the form data store, never upstream.
package format

import (
	"strconv"
	"strings"
)

// DatePlaceholder is returned for empty or malformed date input.
const DatePlaceholder = "___/___/____"

// CurrencyZero is returned for empty or malformed monetary input.
const CurrencyZero = "R$ 0,00"

// Date converts an ISO `YYYY-MM-DD` date or `YYYY-MM-DDTHH:MM` date-time
// string into `DD/MM/YYYY`, with a trailing ` às HH:MM` for date-times.
// Anything else yields DatePlaceholder.
func Date(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return DatePlaceholder
	}

	datePart := value
	timePart := ""
	if idx := strings.IndexByte(value, 'T'); idx >= 0 {
		datePart = value[:idx]
		timePart = value[idx+1:]
	}

	parts := strings.Split(datePart, "-")
	if len(parts) != 3 || !allDigits(parts) {
		return DatePlaceholder
	}

	formatted := parts[2] + "/" + parts[1] + "/" + parts[0]
	if timePart != "" {
		if len(timePart) > 5 {
			timePart = timePart[:5]
		}
		// A malformed time degrades to the date-only rendering.
		if validClock(timePart) {
			formatted += " às " + timePart
		}
	}
	return formatted
}

// validClock reports whether s has the exact HH:MM shape.
func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Currency renders a numeric string as `R$ 1.234,56`: fixed prefix, two
// decimal digits, comma decimal separator, dot thousands separator.
// Empty or non-numeric input yields CurrencyZero.
func Currency(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return CurrencyZero
	}
	// Tolerate a comma decimal separator on input.
	normalized := strings.ReplaceAll(value, ",", ".")
	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return CurrencyZero
	}
	return "R$ " + brazilianNumber(amount)
}

func brazilianNumber(amount float64) string {
	fixed := strconv.FormatFloat(amount, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole := fixed[:len(fixed)-3]
	cents := fixed[len(fixed)-2:]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}
	return sign + grouped.String() + "," + cents
}

func allDigits(parts []string) bool {
	for _, part := range parts {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
