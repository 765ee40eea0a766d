package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/juryplan/pkg/core/services"
)

// RecommendCmd creates the recommend command
func RecommendCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <match_id>",
		Short: "Rank candidate jury teams for one match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topN, _ := cmd.Flags().GetInt("top")
			if topN == 0 {
				topN = app.Cfg.RecommendCount
			}

			result, err := services.Recommend(app.Ctx, app.Database, app.Logger, args[0], topN, app.Cfg.StaticTeamID)
			if err != nil {
				return fmt.Errorf("recommendation failed: %w", err)
			}

			fmt.Printf("\n📋 Candidates for match %s (%s)\n\n",
				result.Match.ID, result.Match.StartTime.Format("2006-01-02 15:04"))

			for i, candidate := range result.Candidates {
				status := "✅"
				if !candidate.Eligible {
					status = "🚫"
				}
				fmt.Printf("  %2d. %s %-25s score %7.1f  (season points %d)\n",
					i+1, status, candidate.Team.Name, candidate.Value, candidate.SeasonPoints)
				for _, violation := range candidate.Violations {
					fmt.Printf("        %s %s\n", severityMark(violation), describeViolation(violation))
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("top", 0, "Number of candidates to list (0 = config default)")
	return cmd
}
