package parser

import (
	"strconv"
	"strings"
)

// mustAmount converts an already-matched regexp group, where the capture
// is known to be a decimal literal.
func mustAmount(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

// splitCards cuts a comma or space separated card list ("6s, 8s" or
// "6s 8s") into trimmed card tokens.
func splitCards(list string) []string {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// pctOfPot expresses amount as a percentage of the pot before the action.
// A zero pot yields 0 rather than dividing.
func pctOfPot(amount, potBefore float64) float64 {
	if potBefore <= 0 {
		return 0
	}
	return amount / potBefore * 100
}
