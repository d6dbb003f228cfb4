package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"risk-assessor/internal/logging"
	"risk-assessor/internal/models"
	"risk-assessor/internal/recommend"
	"risk-assessor/internal/report"
	"risk-assessor/internal/store"
	"risk-assessor/pkg/utils"
)

// analyzeInput is the file format accepted by the analyze command. It
// mirrors the HTTP API's submission shape.
type analyzeInput struct {
	Age          int     `json:"age"`
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	Savings      float64 `json:"savings"`
	Goals        string  `json:"goals"`
	RiskAppetite string  `json:"risk_appetite"`
	Investments  []struct {
		Type            string   `json:"type"`
		Amount          float64  `json:"amount"`
		Name            string   `json:"name"`
		ExpectedReturns *float64 `json:"expected_returns,omitempty"`
		CurrentValue    *float64 `json:"current_value,omitempty"`
	} `json:"investments"`
}

func newAnalyzeCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "analyze <profile.json>",
		Short: "Run a risk assessment from a profile file",
		Long: `Analyze reads an investor profile from a JSON file, runs the full
risk assessment, and prints the resulting report.

The file holds age, income, expenses, savings, goals, risk_appetite, and an
optional investments array.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading profile file: %w", err)
			}

			var input analyzeInput
			if err := json.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("parsing profile file: %w", err)
			}

			profile := models.UserProfile{
				Age:             input.Age,
				AnnualIncome:    input.Income,
				MonthlyExpenses: input.Expenses,
				TotalSavings:    input.Savings,
				Goals:           input.Goals,
				RiskAppetite:    input.RiskAppetite,
			}

			if result := profile.Validate(); !result.IsValid {
				for _, f := range result.MissingFields {
					output.Warning("Missing field: %s", f)
				}
				for _, issue := range result.Issues {
					output.Error("Issue: %s", issue)
				}
				if len(result.Issues) > 0 {
					return fmt.Errorf("profile validation failed")
				}
			}

			portfolio := make(models.Portfolio, 0, len(input.Investments))
			for _, inv := range input.Investments {
				record := models.InvestmentRecord{
					AssetType:       models.AssetType(inv.Type),
					Amount:          inv.Amount,
					Name:            inv.Name,
					ExpectedReturns: inv.ExpectedReturns,
					CurrentValue:    inv.CurrentValue,
				}
				if err := models.ValidateRecord(record); err != nil {
					return err
				}
				portfolio = append(portfolio, record)
			}

			result, err := app.Engine.Assess(profile, portfolio)
			if err != nil {
				return fmt.Errorf("assessment failed: %w", err)
			}

			rep := report.Build(profile, result)

			if save && app.Store != nil {
				id := uuid.New().String()
				record := &store.AssessmentRecord{
					ID:        id,
					CreatedAt: time.Now().UTC(),
					Profile:   profile,
					Portfolio: portfolio,
					Report:    rep,
				}
				if err := app.Store.SaveAssessment(cmd.Context(), record); err != nil {
					output.Warning("Failed to save assessment: %v", err)
				} else {
					logging.LogAssessment(app.Logger, id,
						rep.RiskAssessment.RiskScore,
						string(rep.RiskCategory.FinalCategory),
						rep.Recommendation.PrimaryStrategy)
				}
			}

			if output.IsJSON() {
				return output.JSON(rep)
			}
			printReport(output, rep)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "save the assessment to history")

	return cmd
}

func printReport(output *Output, rep *report.Report) {
	output.Bold("Risk Assessment")
	output.Printf("  Risk Score:      %d/10\n", rep.RiskAssessment.RiskScore)
	output.Printf("  Category:        %s", output.CategoryLabel(rep.RiskCategory.FinalCategory))
	if rep.RiskCategory.FinalCategory != rep.RiskCategory.BaseCategory {
		output.Printf(" (downgraded from %s)", rep.RiskCategory.BaseCategory)
	}
	output.Println()
	for _, factor := range rep.RiskCategory.AdjustmentFactors {
		output.Dim("  Adjustment: %s", factor)
	}
	output.Println()

	output.Bold("Portfolio Analysis")
	output.Printf("  Holdings:        %d across %d asset types\n", rep.PortfolioAnalysis.AssetCount, rep.PortfolioAnalysis.UniqueAssetTypes)
	output.Printf("  Diversity Score: %d/100\n", rep.PortfolioAnalysis.DiversityScore)
	output.Printf("  Concentration:   %s\n", rep.PortfolioAnalysis.RiskConcentration)
	if len(rep.PortfolioAnalysis.AssetAllocation) > 0 {
		table := NewTable(output, "Asset Type", "Allocation")
		for _, assetType := range models.AssetTypes {
			if pct, ok := rep.PortfolioAnalysis.AssetAllocation[assetType]; ok {
				table.AddRow(string(assetType), fmt.Sprintf("%.1f%%", pct))
			}
		}
		table.Render()
	}
	output.Println()

	output.Bold("Recommendation")
	output.Printf("  Time Horizon:    %s\n", rep.Recommendation.TimeHorizon)
	output.Printf("  Strategy:        %s\n", rep.Recommendation.PrimaryStrategy)
	output.Printf("  Monthly SIP:     %s\n", utils.FormatWholeCurrency(rep.Recommendation.SuggestedSIPAmount))
	if rep.Recommendation.SuggestedLumpsumAmount > 0 {
		output.Printf("  Lumpsum:         %s\n", utils.FormatWholeCurrency(rep.Recommendation.SuggestedLumpsumAmount))
	}
	output.Printf("  Emergency Fund:  %s\n", utils.FormatWholeCurrency(rep.Recommendation.EmergencyFundNeeded))
	output.Println()

	if len(rep.Recommendation.RecommendedProducts) > 0 {
		table := NewTable(output, "Product", "Allocation", "Description")
		for _, product := range rep.Recommendation.RecommendedProducts {
			table.AddRow(product.Name, fmt.Sprintf("%d%%", product.Allocation), product.Description)
		}
		table.Render()
		output.Println()
	}

	output.Bold("Target Allocation")
	for _, class := range []string{recommend.ClassEquities, recommend.ClassFixedIncome, recommend.ClassCash, recommend.ClassAlternatives} {
		if pct, ok := rep.TargetAllocation.MainAllocation[class]; ok {
			output.Printf("  %-24s %.0f%%\n", class, pct)
		}
	}
	output.Println()

	output.Info("%s", rep.Recommendation.InvestmentRationale)
	if rep.AgeSpecificAdvice != "" {
		output.Dim("%s", rep.AgeSpecificAdvice)
	}
	output.Println()

	output.Bold("Next Steps")
	for i, step := range rep.NextSteps {
		output.Printf("  %d. %s\n", i+1, step)
	}
}
