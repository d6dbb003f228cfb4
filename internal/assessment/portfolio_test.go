package assessment

import (
	"testing"

	"risk-assessor/internal/models"
)

func TestAnalyzeTwoHoldingPortfolio(t *testing.T) {
	analyzer := NewPortfolioAnalyzer()

	portfolio := models.Portfolio{
		{AssetType: models.AssetEquities, Amount: 62000, Name: "Index Fund"},
		{AssetType: models.AssetCash, Amount: 25000, Name: "Savings Account"},
	}

	analysis := analyzer.Analyze(portfolio)

	if analysis.AssetCount != 2 {
		t.Errorf("asset count = %d, want 2", analysis.AssetCount)
	}
	if analysis.UniqueAssetTypes != 2 {
		t.Errorf("unique types = %d, want 2", analysis.UniqueAssetTypes)
	}
	if analysis.DiversityScore != 40 {
		t.Errorf("diversity = %d, want 40", analysis.DiversityScore)
	}
	if got := analysis.AssetAllocation[models.AssetEquities]; got != 71.3 {
		t.Errorf("equities allocation = %.1f, want 71.3", got)
	}
	if got := analysis.AssetAllocation[models.AssetCash]; got != 28.7 {
		t.Errorf("cash allocation = %.1f, want 28.7", got)
	}
	if analysis.RiskConcentration != "concentrated in Equities (Stocks)" {
		t.Errorf("concentration = %q, want %q", analysis.RiskConcentration, "concentrated in Equities (Stocks)")
	}
}

func TestAnalyzeEmptyPortfolio(t *testing.T) {
	analyzer := NewPortfolioAnalyzer()

	analysis := analyzer.Analyze(models.Portfolio{})

	if analysis.DiversityScore != 0 {
		t.Errorf("diversity = %d, want 0", analysis.DiversityScore)
	}
	if len(analysis.AssetAllocation) != 0 {
		t.Errorf("allocation has %d entries, want 0", len(analysis.AssetAllocation))
	}
	if analysis.RiskConcentration != ConcentrationUnknown {
		t.Errorf("concentration = %q, want %q", analysis.RiskConcentration, ConcentrationUnknown)
	}
}

func TestAnalyzeCurrentValueOverridesAmount(t *testing.T) {
	analyzer := NewPortfolioAnalyzer()

	current := 50000.0
	portfolio := models.Portfolio{
		{AssetType: models.AssetEquities, Amount: 10000, CurrentValue: &current, Name: "Grown position"},
		{AssetType: models.AssetCash, Amount: 50000, Name: "Savings"},
	}

	analysis := analyzer.Analyze(portfolio)

	if got := analysis.AssetAllocation[models.AssetEquities]; got != 50.0 {
		t.Errorf("equities allocation = %.1f, want 50.0", got)
	}
	if analysis.RiskConcentration != "concentrated in Cash & Equivalents, Equities (Stocks)" {
		t.Errorf("concentration = %q", analysis.RiskConcentration)
	}
}

func TestAnalyzeBalancedPortfolio(t *testing.T) {
	analyzer := NewPortfolioAnalyzer()

	// Five equal holdings: 20% each, none above the 40% threshold.
	portfolio := models.Portfolio{
		{AssetType: models.AssetEquities, Amount: 20000},
		{AssetType: models.AssetFixedIncome, Amount: 20000},
		{AssetType: models.AssetCash, Amount: 20000},
		{AssetType: models.AssetPreciousMetals, Amount: 20000},
		{AssetType: models.AssetRealEstate, Amount: 20000},
	}

	analysis := analyzer.Analyze(portfolio)

	if analysis.RiskConcentration != ConcentrationBalanced {
		t.Errorf("concentration = %q, want %q", analysis.RiskConcentration, ConcentrationBalanced)
	}
	if analysis.DiversityScore != 100 {
		t.Errorf("diversity = %d, want 100", analysis.DiversityScore)
	}
}

func TestAnalyzeDiversityCapsAt100(t *testing.T) {
	analyzer := NewPortfolioAnalyzer()

	portfolio := make(models.Portfolio, 0, len(models.AssetTypes))
	for _, assetType := range models.AssetTypes {
		portfolio = append(portfolio, models.InvestmentRecord{AssetType: assetType, Amount: 1000})
	}

	analysis := analyzer.Analyze(portfolio)
	if analysis.DiversityScore != 100 {
		t.Errorf("diversity = %d, want 100 (capped)", analysis.DiversityScore)
	}
}
