package recommend

import (
	"testing"

	"risk-assessor/internal/models"
)

func TestAssembleAppliesSIPFloor(t *testing.T) {
	assembler := NewAssembler()
	template := StrategyTemplate{PrimaryStrategy: "Test Strategy"}

	result := assembler.Assemble(template, Request{
		RiskCategory:  models.CategoryModerate,
		TimeHorizon:   models.HorizonLong,
		MonthlyIncome: 7083.33, // 85000 annual
	})

	// 0.125 * 7083.33 = 885, below the 5000 floor.
	if result.SuggestedSIPAmount != DefaultSIPFloor {
		t.Errorf("SIP = %.0f, want %.0f", result.SuggestedSIPAmount, DefaultSIPFloor)
	}
}

func TestAssembleComputesSIPFromIncome(t *testing.T) {
	assembler := NewAssembler()
	template := StrategyTemplate{PrimaryStrategy: "Test Strategy"}

	result := assembler.Assemble(template, Request{
		RiskCategory:  models.CategoryAggressive,
		TimeHorizon:   models.HorizonLong,
		MonthlyIncome: 80000,
	})

	if result.SuggestedSIPAmount != 10000 {
		t.Errorf("SIP = %.0f, want 10000", result.SuggestedSIPAmount)
	}
}

func TestAssembleLumpsumAmount(t *testing.T) {
	assembler := NewAssembler()
	template := StrategyTemplate{PrimaryStrategy: "Test Strategy"}

	result := assembler.Assemble(template, Request{
		RiskCategory:     models.CategoryModerate,
		TimeHorizon:      models.HorizonLong,
		LumpsumAvailable: true,
		MonthlyIncome:    7083.33,
		TotalSavings:     120000,
		MonthlyExpenses:  4000,
	})

	if result.EmergencyFundNeeded != 24000 {
		t.Errorf("emergency fund = %.0f, want 24000", result.EmergencyFundNeeded)
	}
	// 0.70 * (120000 - 24000) = 67200.
	if result.SuggestedLumpsumAmount != 67200 {
		t.Errorf("lumpsum = %.0f, want 67200", result.SuggestedLumpsumAmount)
	}
}

func TestAssembleNoLumpsumWhenUnavailable(t *testing.T) {
	assembler := NewAssembler()
	template := StrategyTemplate{PrimaryStrategy: "Test Strategy"}

	result := assembler.Assemble(template, Request{
		RiskCategory:     models.CategoryConservative,
		TimeHorizon:      models.HorizonShort,
		LumpsumAvailable: false,
		TotalSavings:     100000,
		MonthlyExpenses:  1000,
	})

	if result.SuggestedLumpsumAmount != 0 {
		t.Errorf("lumpsum = %.0f, want 0 when unavailable", result.SuggestedLumpsumAmount)
	}
}

func TestAssembleCopiesTemplateProducts(t *testing.T) {
	assembler := NewAssembler()
	template := StrategyTemplate{
		PrimaryStrategy: "Test Strategy",
		Products: []models.ProductRecommendation{
			{Name: "Product A", Allocation: 60},
			{Name: "Product B", Allocation: 40},
		},
	}

	result := assembler.Assemble(template, Request{
		RiskCategory: models.CategoryModerate,
		TimeHorizon:  models.HorizonMedium,
	})

	if len(result.RecommendedProducts) != 2 {
		t.Fatalf("product count = %d, want 2", len(result.RecommendedProducts))
	}

	// Mutating the result must not affect the template.
	result.RecommendedProducts[0].Name = "Mutated"
	if template.Products[0].Name != "Product A" {
		t.Error("template products were mutated through the result")
	}
}

func TestRationaleText(t *testing.T) {
	got := Rationale(models.CategoryModerate, models.HorizonLong, false)
	want := "This moderate strategy balances growth potential with reasonable safety " +
		"while your long time horizon enables equity-focused wealth creation. " +
		"The systematic investment through SIPs provides disciplined wealth creation and rupee cost averaging."
	if got != want {
		t.Errorf("rationale = %q\nwant %q", got, want)
	}
}
