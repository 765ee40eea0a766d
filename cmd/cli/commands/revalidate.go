package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/juryplan/pkg/core/services"
)

// RevalidateCmd creates the revalidate command
func RevalidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "revalidate",
		Short: "Audit every existing assignment against the current rules",
		Long:  "Re-run the constraint evaluator over the whole schedule without changing anything, reporting invalid assignments and soft warnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.Revalidate(app.Ctx, app.Database, app.Logger, app.Cfg.StaticTeamID)
			if err != nil {
				return fmt.Errorf("revalidation failed: %w", err)
			}

			fmt.Printf("\n🔍 Schedule Audit\n\n")
			fmt.Printf("Valid:    %d\n", result.ValidCount)
			fmt.Printf("Invalid:  %d\n", result.InvalidCount)
			fmt.Printf("Warnings: %d\n\n", result.WarningCount)

			for _, audit := range result.Audits {
				if audit.Valid && len(audit.Warnings) == 0 {
					continue
				}
				when := audit.Match.StartTime.Format("2006-01-02 15:04")
				if audit.Valid {
					fmt.Printf("  ⚠️  %s  %s on match %s\n", when, audit.Team.Name, audit.Match.ID)
				} else {
					fmt.Printf("  ❌ %s  %s on match %s\n", when, audit.Team.Name, audit.Match.ID)
				}
				for _, violation := range audit.Violations {
					fmt.Printf("       %s %s\n", severityMark(violation), describeViolation(violation))
				}
				for _, warning := range audit.Warnings {
					fmt.Printf("       %s %s\n", severityMark(warning), describeViolation(warning))
				}
			}
			fmt.Println()

			return nil
		},
	}
}
