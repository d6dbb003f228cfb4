// Package models provides domain models for the risk assessment engine.
package models

// RiskAppetite represents a self-described risk tolerance.
type RiskAppetite string

const (
	AppetiteConservative RiskAppetite = "conservative"
	AppetiteModerate     RiskAppetite = "moderate"
	AppetiteAggressive   RiskAppetite = "aggressive"
)

// RiskCategoryLabel represents the engine's risk-tolerance classification.
type RiskCategoryLabel string

const (
	CategoryConservative RiskCategoryLabel = "Conservative"
	CategoryModerate     RiskCategoryLabel = "Moderate"
	CategoryAggressive   RiskCategoryLabel = "Aggressive"
)

// Rank returns the aggressiveness rank of a category (higher = more aggressive).
func (c RiskCategoryLabel) Rank() int {
	switch c {
	case CategoryConservative:
		return 1
	case CategoryModerate:
		return 2
	case CategoryAggressive:
		return 3
	default:
		return 0
	}
}

// TimeHorizon represents the investment duration bucket.
type TimeHorizon string

const (
	HorizonShort  TimeHorizon = "<3 years"
	HorizonMedium TimeHorizon = "3-7 years"
	HorizonLong   TimeHorizon = "7+ years"
)

// AssetType represents a class of investment asset.
type AssetType string

const (
	AssetEquities       AssetType = "Equities (Stocks)"
	AssetFixedIncome    AssetType = "Fixed Income (Bonds)"
	AssetRealEstate     AssetType = "Real Estate"
	AssetCash           AssetType = "Cash & Equivalents"
	AssetPreciousMetals AssetType = "Gold & Precious Metals"
	AssetAlternatives   AssetType = "Alternative Investments"
	AssetCrypto         AssetType = "Cryptocurrencies"
	AssetMutualFunds    AssetType = "Mutual Funds"
	AssetETFs           AssetType = "ETFs"
	AssetRetirement     AssetType = "Retirement Accounts"
)

// AssetTypes lists all recognized asset types in display order.
var AssetTypes = []AssetType{
	AssetEquities,
	AssetFixedIncome,
	AssetRealEstate,
	AssetCash,
	AssetPreciousMetals,
	AssetAlternatives,
	AssetCrypto,
	AssetMutualFunds,
	AssetETFs,
	AssetRetirement,
}

// UserProfile holds a user's demographic and financial background.
// It is an immutable input to the engine; missing numeric fields are
// treated as zero and an unrecognized risk appetite defaults to moderate.
type UserProfile struct {
	Age             int     `json:"age"`
	AnnualIncome    float64 `json:"annual_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	TotalSavings    float64 `json:"total_savings"`
	Goals           string  `json:"goals"`
	RiskAppetite    string  `json:"risk_appetite"`
}

// MonthlyIncome returns the profile's income on a monthly basis.
func (p UserProfile) MonthlyIncome() float64 {
	return p.AnnualIncome / 12
}

// InvestmentRecord represents a single holding in a portfolio.
type InvestmentRecord struct {
	AssetType       AssetType `json:"asset_type"`
	Amount          float64   `json:"amount"`
	CurrentValue    *float64  `json:"current_value,omitempty"`
	Name            string    `json:"name"`
	ExpectedReturns *float64  `json:"expected_returns,omitempty"`
	PurchaseDate    string    `json:"purchase_date,omitempty"`
	Tenure          string    `json:"tenure,omitempty"`
	RiskCategory    string    `json:"risk_category,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// Value resolves the holding's value: current value when present,
// otherwise the initial amount.
func (r InvestmentRecord) Value() float64 {
	if r.CurrentValue != nil {
		return *r.CurrentValue
	}
	return r.Amount
}

// Portfolio is an ordered sequence of holdings. Order is insertion
// order and carries no analytical meaning.
type Portfolio []InvestmentRecord

// RiskFactors holds the signed contributions to a risk score.
type RiskFactors struct {
	SelfDescribedRisk string `json:"self_described_risk"`
	AgeFactor         int    `json:"age_factor"`
	IncomeFactor      int    `json:"income_factor"`
	SavingsFactor     int    `json:"savings_factor"`
}

// RiskAssessment is the output of profile scoring.
type RiskAssessment struct {
	RiskScore           int               `json:"risk_score"`
	RiskCategory        RiskCategoryLabel `json:"risk_category"`
	ContributingFactors RiskFactors       `json:"contributing_factors"`
}

// PortfolioAnalysis holds diversification and concentration metrics.
type PortfolioAnalysis struct {
	DiversityScore    int                   `json:"diversity_score"`
	AssetCount        int                   `json:"asset_count"`
	UniqueAssetTypes  int                   `json:"unique_asset_types"`
	AssetAllocation   map[AssetType]float64 `json:"asset_allocation"`
	RiskConcentration string                `json:"risk_concentration"`
}

// RiskCategory is the final categorization after downgrade adjustments.
// FinalCategory is never more aggressive than BaseCategory.
type RiskCategory struct {
	FinalCategory     RiskCategoryLabel `json:"category"`
	BaseCategory      RiskCategoryLabel `json:"base_category"`
	AdjustmentFactors []string          `json:"adjustment_factors"`
}

// FundOption is an illustrative fund with a historical return figure.
type FundOption struct {
	Name        string `json:"name"`
	Return      string `json:"return"`
	Description string `json:"description"`
}

// ProductRecommendation is one entry of a product allocation template.
type ProductRecommendation struct {
	Name        string       `json:"name"`
	Allocation  int          `json:"allocation"`
	Description string       `json:"description"`
	Funds       []FundOption `json:"funds,omitempty"`
}

// RecommendationResult is the final structured recommendation.
type RecommendationResult struct {
	RiskCategory           RiskCategoryLabel       `json:"risk_category"`
	TimeHorizon            TimeHorizon             `json:"time_horizon"`
	LumpsumAvailable       bool                    `json:"lumpsum_available"`
	EmergencyFundNeeded    float64                 `json:"emergency_fund_needed"`
	SuggestedSIPAmount     float64                 `json:"suggested_sip_amount"`
	SuggestedLumpsumAmount float64                 `json:"suggested_lumpsum_amount"`
	PrimaryStrategy        string                  `json:"primary_strategy"`
	RecommendedProducts    []ProductRecommendation `json:"recommended_products"`
	InvestmentRationale    string                  `json:"investment_rationale"`
}
