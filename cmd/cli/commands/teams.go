package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/juryplan/pkg/db"
)

// teamSeed is the YAML import format for teams
type teamSeed struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	CapacityFactor float64 `yaml:"capacityFactor"`
	DedicatedTo    string  `yaml:"dedicatedTo,omitempty"`
	Excluded       bool    `yaml:"excluded,omitempty"`
}

// TeamsCmd creates the teams command group
func TeamsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Inspect and manage the duty team pool",
	}
	cmd.AddCommand(teamsListCmd(app))
	cmd.AddCommand(teamsImportCmd(app))
	cmd.AddCommand(teamsDutiesCmd(app))
	return cmd
}

func teamsListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all duty-capable teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := app.Database.GetEligibleTeams(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list teams: %w", err)
			}

			fmt.Printf("\n👥 Teams (%d)\n\n", len(teams))
			for _, team := range teams {
				extra := ""
				if team.DedicatedTo != "" {
					extra = fmt.Sprintf("  dedicated to %s", team.DedicatedTo)
				}
				fmt.Printf("  %-12s %-25s capacity %.1f%s\n", team.ID, team.Name, team.CapacityFactor, extra)
			}
			fmt.Println()
			return nil
		},
	}
}

func teamsImportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import teams from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read teams file: %w", err)
			}

			var seeds []teamSeed
			if err := yaml.Unmarshal(data, &seeds); err != nil {
				return fmt.Errorf("failed to parse teams file: %w", err)
			}
			if len(seeds) == 0 {
				return fmt.Errorf("teams file %s contains no teams", args[0])
			}

			teams := make([]db.Team, 0, len(seeds))
			for _, seed := range seeds {
				capacity := seed.CapacityFactor
				if capacity == 0 {
					capacity = 1
				}
				teams = append(teams, db.Team{
					ID:             seed.ID,
					Name:           seed.Name,
					CapacityFactor: capacity,
					DedicatedTo:    seed.DedicatedTo,
					Excluded:       seed.Excluded,
				})
			}

			if err := app.Database.InsertTeams(app.Ctx, teams); err != nil {
				return fmt.Errorf("failed to insert teams: %w", err)
			}
			fmt.Printf("✓ Imported %d teams\n", len(teams))
			return nil
		},
	}
}

func teamsDutiesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duties <team_id>",
		Short: "List a team's duty assignments in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromStr, _ := cmd.Flags().GetString("from")
			untilStr, _ := cmd.Flags().GetString("until")

			from := time.Time{}
			until := time.Now().AddDate(1, 0, 0)
			var err error
			if fromStr != "" {
				if from, err = time.Parse("2006-01-02", fromStr); err != nil {
					return fmt.Errorf("invalid --from date: %w", err)
				}
			}
			if untilStr != "" {
				if until, err = time.Parse("2006-01-02", untilStr); err != nil {
					return fmt.Errorf("invalid --until date: %w", err)
				}
			}

			team, err := app.Database.GetTeam(app.Ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch team %s: %w", args[0], err)
			}

			assignments, err := app.Database.GetAssignmentsForTeam(app.Ctx, team.ID, from, until)
			if err != nil {
				return fmt.Errorf("failed to fetch assignments: %w", err)
			}

			fmt.Printf("\n👥 Duties for %s (%d)\n\n", team.Name, len(assignments))
			for _, assignment := range assignments {
				match, err := app.Database.GetMatch(app.Ctx, assignment.MatchID)
				if err != nil {
					return fmt.Errorf("failed to fetch match %s: %w", assignment.MatchID, err)
				}
				fmt.Printf("  %s  %s vs %s  (assignment %s)\n",
					match.StartTime.Format("2006-01-02 15:04"),
					match.HomeTeamID, match.AwayTeamID, assignment.ID)
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().String("from", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().String("until", "", "Window end (YYYY-MM-DD)")
	return cmd
}
