package utils

import (
	"strconv"
	"strings"
)

// FormatCurrencyJPY formats an integer yen amount with thousand separators.
// Example: 1000 -> "1,000円"
func FormatCurrencyJPY(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ",") + "円"
}
