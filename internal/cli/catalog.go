package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"risk-assessor/internal/models"
	"risk-assessor/internal/recommend"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse strategies and funds",
		Long:  "Inspect the strategy matrix and illustrative fund catalog used by the engine.",
	}

	cmd.AddCommand(newCatalogMatrixCmd())
	cmd.AddCommand(newCatalogFundsCmd())

	return cmd
}

func newCatalogMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Show the strategy matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			matrix := recommend.NewMatrix()

			if output.IsJSON() {
				entries := make([]map[string]interface{}, 0, matrix.Len())
				for _, key := range matrix.Keys() {
					template, err := matrix.Lookup(key.Category, key.Horizon, key.Lumpsum)
					if err != nil {
						return err
					}
					entries = append(entries, map[string]interface{}{
						"category":         key.Category,
						"time_horizon":     key.Horizon,
						"lumpsum":          key.Lumpsum,
						"primary_strategy": template.PrimaryStrategy,
					})
				}
				return output.JSON(entries)
			}

			table := NewTable(output, "Category", "Horizon", "Lumpsum", "Strategy")
			for _, key := range matrix.Keys() {
				template, err := matrix.Lookup(key.Category, key.Horizon, key.Lumpsum)
				if err != nil {
					return err
				}
				lumpsum := "no"
				if key.Lumpsum {
					lumpsum = "yes"
				}
				table.AddRow(
					output.CategoryLabel(key.Category),
					string(key.Horizon),
					lumpsum,
					template.PrimaryStrategy,
				)
			}
			table.Render()
			return nil
		},
	}
}

func newCatalogFundsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "funds <fund-type>",
		Short: "Show illustrative funds for a product type",
		Long: `Show the illustrative funds backing a recommended product, for example
"Fixed Deposits" or "Index Funds".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			label := models.RiskCategoryLabel(category)
			funds := recommend.Funds(label, args[0])
			if len(funds) == 0 {
				return fmt.Errorf("no funds found for %q in category %q", args[0], category)
			}

			if output.IsJSON() {
				return output.JSON(funds)
			}

			table := NewTable(output, "Fund", "Return", "Description")
			for _, fund := range funds {
				table.AddRow(fund.Name, fund.Return, fund.Description)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", string(models.CategoryModerate), "risk category (Conservative, Moderate, Aggressive)")

	return cmd
}
