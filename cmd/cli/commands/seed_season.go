package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/juryplan/pkg/core/services"
)

// SeedSeasonCmd creates the seedSeason command
func SeedSeasonCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seedSeason <from> <until>",
		Short: "Generate placeholder match slots from the configured recurrence rules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid from date: %w", err)
			}
			until, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("invalid until date: %w", err)
			}

			result, err := services.SeedSeason(app.Ctx, app.Database, app.Logger, app.Cfg.SeasonSeeds, from, until)
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}

			fmt.Printf("\n✓ Seeded %d match slots\n\n", len(result.Matches))
			for i, match := range result.Matches {
				fmt.Printf("  %2d. %s  %s\n", i+1, match.StartTime.Format("2006-01-02 15:04 (Monday)"), match.Competition)
			}
			fmt.Println()
			return nil
		},
	}
	return cmd
}
