// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency formats an amount with the rupee symbol and Indian
// digit grouping (lakhs, crores).
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	result := "₹" + formatIndianNumber(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatWholeCurrency formats an amount with no decimal places.
func FormatWholeCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	result := "₹" + formatIndianNumber(fmt.Sprintf("%.0f", amount))
	if negative {
		result = "-" + result
	}
	return result
}

// formatIndianNumber groups an integer string in the Indian numbering
// system: the last three digits, then groups of two.
func formatIndianNumber(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	s = s[:n-3]

	for len(s) > 0 {
		if len(s) >= 2 {
			result = s[len(s)-2:] + "," + result
			s = s[:len(s)-2]
		} else {
			result = s + "," + result
			s = ""
		}
	}

	return result
}

// FormatPercent formats a percentage with one decimal place.
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
