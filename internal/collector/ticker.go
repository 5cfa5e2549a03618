package collector

import (
	"errors"
	"strings"
)

// tsxSuffix is appended to bare symbols: this tool is TSX-focused, so a
// plain "RY" means "RY.TO".
const tsxSuffix = ".TO"

// NormalizeTicker maps a raw symbol to the symbol queried on the provider.
// Index symbols (leading '^') and symbols that already carry a market
// suffix (any '.') pass through unchanged. The empty string is the only
// invalid input.
func NormalizeTicker(raw string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(raw))
	if t == "" {
		return "", errors.New("ticker must not be empty")
	}
	if strings.HasPrefix(t, "^") {
		return t, nil // index symbols like ^GSPTSE
	}
	if strings.Contains(t, ".") {
		return t, nil
	}
	return t + tsxSuffix, nil
}

// periods is the set of range tokens the chart API accepts.
var periods = map[string]bool{
	"1d":  true,
	"5d":  true,
	"1mo": true,
	"3mo": true,
	"6mo": true,
	"1y":  true,
	"2y":  true,
	"5y":  true,
	"10y": true,
	"ytd": true,
	"max": true,
}

// ValidPeriod reports whether the token is an accepted history range.
func ValidPeriod(period string) bool { return periods[period] }

// Periods returns the accepted range tokens, short horizons first.
func Periods() []string {
	return []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}
}
