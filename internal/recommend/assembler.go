package recommend

import (
	"fmt"
	"math"
	"strings"

	"risk-assessor/internal/models"
)

const (
	// DefaultSIPFloor is the minimum suggested monthly SIP when the
	// income-derived amount falls below it.
	DefaultSIPFloor = 5000.0

	// sipIncomeShare is the fraction of monthly income suggested as SIP.
	sipIncomeShare = 0.125

	// lumpsumSurplusShare is the fraction of the investable surplus
	// suggested for immediate deployment.
	lumpsumSurplusShare = 0.70

	emergencyFundMonths = 6
)

// Request carries the inputs the assembler needs beyond the selected
// template: the classification tuple plus the raw financial figures
// used for amount computation.
type Request struct {
	RiskCategory     models.RiskCategoryLabel
	TimeHorizon      models.TimeHorizon
	LumpsumAvailable bool
	MonthlyIncome    float64
	TotalSavings     float64
	MonthlyExpenses  float64
}

// Assembler merges engine-computed contribution amounts into a
// matrix-selected template and produces the final recommendation.
type Assembler struct {
	sipFloor float64
}

// NewAssembler creates an assembler with the default SIP floor.
func NewAssembler() *Assembler {
	return &Assembler{sipFloor: DefaultSIPFloor}
}

// NewAssemblerWithFloor creates an assembler with a custom SIP floor.
func NewAssemblerWithFloor(floor float64) *Assembler {
	return &Assembler{sipFloor: floor}
}

// Assemble computes the SIP and lumpsum amounts, merges them with the
// template's product allocation, and renders the rationale.
func (a *Assembler) Assemble(template StrategyTemplate, req Request) models.RecommendationResult {
	sip := math.Round(req.MonthlyIncome * sipIncomeShare)
	if sip < a.sipFloor {
		sip = a.sipFloor
	}

	emergencyFund := req.MonthlyExpenses * emergencyFundMonths
	surplus := math.Max(0, req.TotalSavings-emergencyFund)
	var lumpsum float64
	if req.LumpsumAvailable {
		lumpsum = math.Round(surplus * lumpsumSurplusShare)
	}

	products := make([]models.ProductRecommendation, len(template.Products))
	copy(products, template.Products)

	return models.RecommendationResult{
		RiskCategory:           req.RiskCategory,
		TimeHorizon:            req.TimeHorizon,
		LumpsumAvailable:       req.LumpsumAvailable,
		EmergencyFundNeeded:    emergencyFund,
		SuggestedSIPAmount:     sip,
		SuggestedLumpsumAmount: lumpsum,
		PrimaryStrategy:        template.PrimaryStrategy,
		RecommendedProducts:    products,
		InvestmentRationale:    Rationale(req.RiskCategory, req.TimeHorizon, req.LumpsumAvailable),
	}
}

// Rationale renders the templated explanation for a strategy selection.
func Rationale(category models.RiskCategoryLabel, horizon models.TimeHorizon, lumpsum bool) string {
	return fmt.Sprintf("This %s strategy %s while your %s. The %s.",
		strings.ToLower(string(category)),
		categoryRationale[category],
		horizonRationale[horizon],
		lumpsumRationale[lumpsum],
	)
}
