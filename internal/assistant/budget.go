package assistant

import (
	"regexp"
	"strconv"
)

// Any 2-5 digit run counts, so "laptop 2024" reads as a €2024 budget.
var budgetPattern = regexp.MustCompile(`€?\s*(\d{2,5})`)

// ExtractBudget returns the first 2-5 digit number in message. A number that
// parses to zero is treated as no budget.
func ExtractBudget(message string) (int, bool) {
	m := budgetPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}
