package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"risk-assessor/internal/store"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Assessment history",
		Long:  "View and manage stored assessments.",
	}

	cmd.AddCommand(newHistoryListCmd(app))
	cmd.AddCommand(newHistoryShowCmd(app))
	cmd.AddCommand(newHistoryPruneCmd(app))

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var category string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("assessment history is not available")
			}

			records, err := app.Store.ListAssessments(cmd.Context(), store.AssessmentFilter{
				Category: category,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(records)
			}

			if len(records) == 0 {
				output.Dim("No assessments stored.")
				return nil
			}

			table := NewTable(output, "ID", "Date", "Score", "Category", "Strategy")
			for _, record := range records {
				table.AddRow(
					record.ID[:8],
					record.CreatedAt.Format("2006-01-02 15:04"),
					fmt.Sprintf("%d/10", record.Report.RiskAssessment.RiskScore),
					output.CategoryLabel(record.Report.RiskCategory.FinalCategory),
					record.Report.Recommendation.PrimaryStrategy,
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by risk category")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of entries")

	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("assessment history is not available")
			}

			record, err := app.Store.GetAssessment(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(record)
			}

			output.Dim("Assessment %s from %s", record.ID, record.CreatedAt.Format("2006-01-02 15:04"))
			output.Println()
			printReport(output, record.Report)
			return nil
		},
	}
}

func newHistoryPruneCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("assessment history is not available")
			}

			cutoff := time.Now().AddDate(0, 0, -days)
			removed, err := app.Store.PruneAssessments(cmd.Context(), cutoff)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]int64{"removed": removed})
			}
			output.Success("Removed %d assessments older than %d days", removed, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 90, "delete assessments older than this many days")

	return cmd
}
