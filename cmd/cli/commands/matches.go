package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/juryplan/pkg/db"
)

// MatchesCmd creates the matches command group
func MatchesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Inspect and manage the match schedule",
	}
	cmd.AddCommand(matchesListCmd(app))
	cmd.AddCommand(matchesLockCmd(app, true))
	cmd.AddCommand(matchesLockCmd(app, false))
	cmd.AddCommand(matchesDayCmd(app))
	return cmd
}

func matchesListCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List matches, optionally only the assignable ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			unassigned, _ := cmd.Flags().GetBool("unassigned")
			fromStr, _ := cmd.Flags().GetString("from")

			from := time.Time{}
			if fromStr != "" {
				var err error
				from, err = time.Parse("2006-01-02", fromStr)
				if err != nil {
					return fmt.Errorf("invalid --from date: %w", err)
				}
			}

			var matches []db.Match
			var err error
			if unassigned {
				matches, err = app.Database.GetUnassignedMatches(app.Ctx, from)
			} else {
				matches, err = app.Database.GetMatches(app.Ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list matches: %w", err)
			}

			fmt.Printf("\n📅 Matches (%d)\n\n", len(matches))
			for _, match := range matches {
				lock := " "
				if match.Locked {
					lock = "🔒"
				}
				fmt.Printf("  %s %s  %-36s %s vs %s  %s\n",
					lock, match.StartTime.Format("2006-01-02 15:04"), match.ID,
					match.HomeTeamID, match.AwayTeamID, match.Competition)
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().Bool("unassigned", false, "Only matches without an assignment")
	cmd.Flags().String("from", "", "Only matches starting on or after this date (YYYY-MM-DD)")
	return cmd
}

func matchesLockCmd(app *AppContext, lock bool) *cobra.Command {
	use, short := "lock <match_id>", "Exclude a match from automatic assignment"
	if !lock {
		use, short = "unlock <match_id>", "Make a match assignable again"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Database.SetMatchLocked(app.Ctx, args[0], lock); err != nil {
				return fmt.Errorf("failed to update match %s: %w", args[0], err)
			}
			state := "unlocked"
			if lock {
				state = "locked"
			}
			fmt.Printf("✓ Match %s %s\n", args[0], state)
			return nil
		},
	}
}

func matchesDayCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "day <date>",
		Short: "Show the duty roster for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			assignments, err := app.Database.GetAssignmentsForDay(app.Ctx, day)
			if err != nil {
				return fmt.Errorf("failed to fetch assignments: %w", err)
			}

			fmt.Printf("\n📅 Duty roster for %s\n\n", day.Format("Monday 2006-01-02"))
			for _, assignment := range assignments {
				match, err := app.Database.GetMatch(app.Ctx, assignment.MatchID)
				if err != nil {
					return fmt.Errorf("failed to fetch match %s: %w", assignment.MatchID, err)
				}
				team, err := app.Database.GetTeam(app.Ctx, assignment.TeamID)
				if err != nil {
					return fmt.Errorf("failed to fetch team %s: %w", assignment.TeamID, err)
				}
				fmt.Printf("  %s  %s vs %s → %s  (assignment %s)\n",
					match.StartTime.Format("15:04"), match.HomeTeamID, match.AwayTeamID,
					team.Name, assignment.ID)
			}
			if len(assignments) == 0 {
				fmt.Println("  no duties scheduled")
			}
			fmt.Println()
			return nil
		},
	}
}
