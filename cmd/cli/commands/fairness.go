package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/juryplan/pkg/core/services"
)

// FairnessCmd creates the fairness command
func FairnessCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fairness",
		Short: "Show the season's duty point distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, _ := cmd.Flags().GetString("team")

			report, err := services.ReportFairness(app.Ctx, app.Database, app.Logger, app.Cfg.StaticTeamID, teamID)
			if err != nil {
				return fmt.Errorf("fairness report failed: %w", err)
			}

			fmt.Printf("\n⚖️  Duty Point Distribution\n\n")
			for _, team := range report.Teams {
				last := "never"
				if !team.LastAssignment.IsZero() {
					last = team.LastAssignment.Format("2006-01-02")
				}
				fmt.Printf("  %-12s %4d points  %3d duties  last %s\n",
					team.TeamID, team.Total, team.Count, last)
			}
			fmt.Printf("\nSpread:         %d (min %d, max %d)\n",
				report.Metrics.Spread, report.Metrics.Min, report.Metrics.Max)
			fmt.Printf("Average:        %.1f\n", report.Metrics.AveragePoints)
			fmt.Printf("Fairness score: %.0f/100\n\n", report.Metrics.FairnessScore)

			return nil
		},
	}

	cmd.Flags().String("team", "", "Limit the breakdown to one team id")
	return cmd
}
