package recommend

import "risk-assessor/internal/models"

// ProductSuggestion is a descriptive product idea for an asset class.
type ProductSuggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// equityProducts vary by risk category.
var equityProducts = map[models.RiskCategoryLabel][]ProductSuggestion{
	models.CategoryConservative: {
		{Name: "Large Cap Index Fund", Description: "Low-cost index fund tracking large established companies"},
		{Name: "Dividend ETFs", Description: "Focused on companies with stable dividend payouts"},
		{Name: "Blue-chip stocks", Description: "Established companies with stable performance"},
	},
	models.CategoryModerate: {
		{Name: "Index Funds (mix of large and mid-cap)", Description: "Balanced exposure to various market segments"},
		{Name: "Growth ETFs", Description: "Focus on companies with above-average growth potential"},
		{Name: "Select International Funds", Description: "Exposure to developed international markets"},
	},
	models.CategoryAggressive: {
		{Name: "Small-cap Growth Funds", Description: "Higher growth potential with higher volatility"},
		{Name: "Sector-specific ETFs", Description: "Targeted exposure to high-growth sectors"},
		{Name: "Emerging Market Funds", Description: "Exposure to developing economies with high growth potential"},
	},
}

// fixedIncomeProducts vary by risk category.
var fixedIncomeProducts = map[models.RiskCategoryLabel][]ProductSuggestion{
	models.CategoryConservative: {
		{Name: "Government Bonds", Description: "Highest safety with lower yields"},
		{Name: "AAA Corporate Bonds", Description: "High-quality corporate debt with slightly better yields"},
		{Name: "Short-term Bond Funds", Description: "Lower interest rate risk"},
	},
	models.CategoryModerate: {
		{Name: "Intermediate-term Bond Funds", Description: "Balance of yield and interest rate risk"},
		{Name: "Investment-grade Corporate Bond Funds", Description: "Higher yields with moderate risk"},
		{Name: "Municipal Bond Funds (tax-advantaged)", Description: "Tax benefits for certain investors"},
	},
	models.CategoryAggressive: {
		{Name: "High-yield Corporate Bonds", Description: "Higher yields with higher default risk"},
		{Name: "Emerging Market Bonds", Description: "Higher potential returns with currency and political risk"},
		{Name: "Convertible Bonds", Description: "Potential equity upside with some downside protection"},
	},
}

// alternativeProducts vary by risk category.
var alternativeProducts = map[models.RiskCategoryLabel][]ProductSuggestion{
	models.CategoryConservative: {
		{Name: "REITs (Real Estate Investment Trusts)", Description: "Real estate exposure with regular income"},
		{Name: "Preferred Stock ETFs", Description: "Higher dividends than common stock with less price appreciation"},
	},
	models.CategoryModerate: {
		{Name: "Gold ETFs", Description: "Hedge against inflation and market volatility"},
		{Name: "Real Estate Funds", Description: "Broader real estate exposure across property types"},
	},
	models.CategoryAggressive: {
		{Name: "Commodity ETFs", Description: "Exposure to various commodities for inflation protection"},
		{Name: "Private Equity Funds", Description: "Investment in private companies with higher return potential"},
	},
}

// cashProducts are the same across risk profiles.
var cashProducts = []ProductSuggestion{
	{Name: "High-yield Savings Account", Description: "Liquid savings with competitive interest rates"},
	{Name: "Money Market Funds", Description: "Short-term, high-quality investments"},
	{Name: "Short-term CDs", Description: "Fixed income for short time horizons with better rates than savings"},
}

// taxAdvantagedProducts are always included.
var taxAdvantagedProducts = []ProductSuggestion{
	{Name: "401(k)/403(b)", Description: "Employer-sponsored retirement accounts with tax benefits"},
	{Name: "Traditional IRA", Description: "Tax-deferred growth for retirement"},
	{Name: "Roth IRA", Description: "Tax-free growth and withdrawals in retirement"},
}

// SuggestProducts returns descriptive product shortlists per asset
// class present in the target allocation, plus the tax-advantaged
// options that are always included.
func SuggestProducts(category models.RiskCategoryLabel, allocation TargetAllocation) map[string][]ProductSuggestion {
	if _, ok := equityProducts[category]; !ok {
		category = models.CategoryModerate
	}

	suggestions := make(map[string][]ProductSuggestion)
	for class := range allocation.MainAllocation {
		switch class {
		case ClassEquities:
			suggestions[ClassEquities] = equityProducts[category]
		case ClassFixedIncome:
			suggestions[ClassFixedIncome] = fixedIncomeProducts[category]
		case ClassAlternatives:
			suggestions[ClassAlternatives] = alternativeProducts[category]
		case ClassCash:
			suggestions["Cash & Equivalents"] = cashProducts
		}
	}
	suggestions["Tax-advantaged Options"] = taxAdvantagedProducts
	return suggestions
}
