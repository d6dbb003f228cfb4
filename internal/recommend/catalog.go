// Package recommend selects investment strategies via a decision matrix
// keyed by risk category, time horizon, and lumpsum availability.
package recommend

import "risk-assessor/internal/models"

// fundCatalog holds illustrative fund picks with historical returns,
// keyed by risk category and fund type. Reference data sourced from the
// product catalog; versioned, not logic.
var fundCatalog = map[models.RiskCategoryLabel]map[string][]models.FundOption{
	models.CategoryConservative: {
		"FD": {
			{Name: "HDFC Fixed Deposit", Return: "7.00%", Description: "Secure fixed returns"},
			{Name: "SBI Fixed Deposit", Return: "7.00%", Description: "Government bank safety"},
			{Name: "ICICI Fixed Deposit", Return: "7.00%", Description: "Private bank reliability"},
		},
		"Short-term Debt MF": {
			{Name: "HDFC Short Term Debt Fund", Return: "7.50%", Description: "Low duration risk, stable returns"},
			{Name: "ICICI Prudential Short Term Fund", Return: "8.23%", Description: "Better returns than FDs with moderate risk"},
		},
		"Conservative Hybrid MF": {
			{Name: "HDFC Hybrid Debt Fund", Return: "7.00%", Description: "Debt-heavy hybrid for safety"},
			{Name: "Aditya Birla Balanced Advantage Fund", Return: "8.00%", Description: "Dynamic allocation with conservative bias"},
		},
	},
	models.CategoryModerate: {
		"FD": {
			{Name: "HDFC Fixed Deposit", Return: "7.00%", Description: "Stable base component"},
			{Name: "SBI Fixed Deposit", Return: "7.00%", Description: "Government backing"},
			{Name: "ICICI Fixed Deposit", Return: "7.00%", Description: "Consistent performer"},
		},
		"Arbitrage / Low Duration Debt MF": {
			{Name: "Nippon India Arbitrage Fund", Return: "6.50%", Description: "Equity taxation with debt-like risk"},
			{Name: "ICICI Prudential Arbitrage Fund", Return: "7.50%", Description: "Market neutral strategy"},
			{Name: "HDFC Low Duration Fund", Return: "7.00%", Description: "Minimal interest rate risk"},
		},
		"Balanced Advantage MF": {
			{Name: "HDFC Balanced Advantage Fund", Return: "8.50%", Description: "Dynamic asset allocation leader"},
			{Name: "ICICI Prudential Balanced Advantage Fund", Return: "9.00%", Description: "Tactical allocation expertise"},
		},
		"ELSS": {
			{Name: "Mirae Asset Tax Saver Fund", Return: "12.50%", Description: "Tax-saving equity with growth focus"},
			{Name: "Axis Long Term Equity Fund", Return: "13.00%", Description: "Consistent tax-saving performer"},
			{Name: "Aditya Birla Sun Life Tax Relief 96", Return: "13.50%", Description: "Long-term wealth creation with tax benefits"},
		},
		"Index / Large Cap MF": {
			{Name: "Nippon India Large Cap Fund", Return: "10.00%", Description: "Large cap focused growth"},
			{Name: "HDFC Index Fund – Nifty 50 Plan", Return: "11.00%", Description: "Low-cost index tracking"},
			{Name: "SBI Bluechip Fund", Return: "12.00%", Description: "Quality large cap selection"},
		},
	},
	models.CategoryAggressive: {
		"FD": {
			{Name: "HDFC Fixed Deposit", Return: "7.00%", Description: "Emergency funds only"},
			{Name: "SBI Fixed Deposit", Return: "7.00%", Description: "Liquidity component"},
			{Name: "ICICI Fixed Deposit", Return: "7.00%", Description: "Short-term parking"},
		},
		"Multi-cap / Flexi-cap MF": {
			{Name: "Parag Parikh Flexi Cap Fund", Return: "12.50%", Description: "Global exposure with flexi-cap approach"},
			{Name: "Kotak Standard Multicap Fund", Return: "13.67%", Description: "Multi-cap diversification"},
			{Name: "Mirae Asset Emerging Bluechip Fund", Return: "14.23%", Description: "Mid-cap focused growth"},
		},
		"Equity MF": {
			{Name: "Mirae Asset Large Cap Fund", Return: "12.25%", Description: "Quality large cap growth"},
			{Name: "Canara Robeco Equity Diversified Fund", Return: "13.50%", Description: "Diversified equity strategy"},
			{Name: "Axis Bluechip Fund", Return: "14.65%", Description: "Premium equity selection"},
		},
		"ELSS": {
			{Name: "Mirae Asset Tax Saver Fund", Return: "12.50%", Description: "Growth-oriented tax saver"},
			{Name: "Axis Long Term Equity Fund", Return: "13.00%", Description: "Aggressive tax-saving approach"},
			{Name: "Aditya Birla Sun Life Tax Relief 96", Return: "13.50%", Description: "High-growth tax benefits"},
		},
	},
}

// Funds returns the illustrative fund options for a risk category and
// fund type, or nil when the catalog has no entry.
func Funds(category models.RiskCategoryLabel, fundType string) []models.FundOption {
	return fundCatalog[category][fundType]
}

// categoryRationale describes each risk category's investment posture.
var categoryRationale = map[models.RiskCategoryLabel]string{
	models.CategoryConservative: "focuses on capital preservation with minimal risk",
	models.CategoryModerate:     "balances growth potential with reasonable safety",
	models.CategoryAggressive:   "prioritizes maximum growth potential with higher risk tolerance",
}

// horizonRationale describes what each time horizon allows.
var horizonRationale = map[models.TimeHorizon]string{
	models.HorizonShort:  "short time horizon requires capital protection and liquidity",
	models.HorizonMedium: "medium time horizon allows for balanced growth with some stability",
	models.HorizonLong:   "long time horizon enables equity-focused wealth creation",
}

// lumpsumRationale describes the contribution mode.
var lumpsumRationale = map[bool]string{
	true:  "lumpsum availability enables immediate market participation and SIP for rupee cost averaging",
	false: "systematic investment through SIPs provides disciplined wealth creation and rupee cost averaging",
}
