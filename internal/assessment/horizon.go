package assessment

import (
	"strings"

	"risk-assessor/internal/models"
)

// Keyword sets scanned over the goals text. Short-term keywords take
// precedence over long-term ones.
var (
	shortTermKeywords = []string{"emergency", "travel", "wedding", "car", "short-term"}
	longTermKeywords  = []string{"retirement", "child education", "property", "long-term"}
)

// EmergencyFundMonths is the number of months of expenses reserved
// before any savings count as investable.
const EmergencyFundMonths = 6

// ClassifyTimeHorizon derives an investment time horizon from the
// stated goals and age. Keyword matching is case-insensitive and rule
// order matters: a goals string naming both a wedding and retirement
// resolves to the short horizon.
func ClassifyTimeHorizon(goals string, age int) models.TimeHorizon {
	lower := strings.ToLower(goals)

	if containsAny(lower, shortTermKeywords) {
		return models.HorizonShort
	}
	if containsAny(lower, longTermKeywords) {
		return models.HorizonLong
	}
	// Unmatched goals default to the medium horizon at any age.
	return models.HorizonMedium
}

// EmergencyFund returns the emergency reserve target for the given
// monthly expenses.
func EmergencyFund(monthlyExpenses float64) float64 {
	return monthlyExpenses * EmergencyFundMonths
}

// LumpsumAvailable reports whether savings exceed the emergency fund,
// leaving an investable lump sum. The boundary case savings == fund is
// not available.
func LumpsumAvailable(totalSavings, monthlyExpenses float64) bool {
	return totalSavings > EmergencyFund(monthlyExpenses)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
