package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/core/services"
)

// AutoAssignCmd creates the autoAssign command
func AutoAssignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autoAssign",
		Short: "Assign jury teams to all unassigned matches",
		Long:  "Run the assignment engine over every assignable match in chronological order, committing the whole batch in one transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			maxAssignments, _ := cmd.Flags().GetInt("max")
			fromStr, _ := cmd.Flags().GetString("from")

			var from time.Time
			if fromStr != "" {
				var err error
				from, err = time.Parse("2006-01-02", fromStr)
				if err != nil {
					return fmt.Errorf("invalid --from date: %w", err)
				}
			}
			if maxAssignments == 0 {
				maxAssignments = app.Cfg.MaxAssignments
			}

			app.Logger.Debug("autoAssign command",
				zap.Bool("dry_run", dryRun),
				zap.Int("max", maxAssignments))

			result, err := services.AutoAssign(app.Ctx, app.Database, app.Logger, services.AutoAssignOptions{
				From:           from,
				MaxAssignments: maxAssignments,
				DryRun:         dryRun,
				StaticTeamID:   app.Cfg.StaticTeamID,
			})
			if err != nil {
				if result != nil {
					fmt.Printf("\n❌ Batch failed: computed %d decisions, committed %d\n\n", result.Computed, result.Committed)
				}
				return fmt.Errorf("auto-assign failed: %w", err)
			}

			fmt.Printf("\n🎯 Jury Assignment Results\n\n")
			if dryRun {
				fmt.Printf("Mode:         🧪 DRY RUN (not saved)\n")
			}
			fmt.Printf("Assigned:     %d\n", result.Committed)
			if dryRun {
				fmt.Printf("Computed:     %d\n", result.Computed)
			}
			fmt.Printf("Unassignable: %d\n\n", result.Unassignable)

			for _, decision := range result.Decisions {
				when := decision.Match.StartTime.Format("2006-01-02 15:04")
				if decision.State == assigner.StateAssigned {
					fmt.Printf("  ✅ %s  match %s → %s (score %.1f)\n",
						when, decision.Match.ID, decision.Team.Name, decision.Score)
					for _, warning := range decision.Warnings {
						fmt.Printf("       %s %s\n", severityMark(warning), describeViolation(warning))
					}
				} else {
					fmt.Printf("  ❌ %s  match %s: %s\n", when, decision.Match.ID, decision.Reason)
				}
			}
			fmt.Println()

			if len(result.UncoveredCodes) > 0 {
				fmt.Printf("⚠️  Constraints without rule implementations: %v\n\n", result.UncoveredCodes)
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Compute decisions without saving")
	cmd.Flags().Int("max", 0, "Maximum number of matches to assign (0 = config default)")
	cmd.Flags().String("from", "", "Only assign matches starting on or after this date (YYYY-MM-DD)")
	return cmd
}
