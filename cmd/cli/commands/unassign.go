package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// UnassignCmd creates the unassign command
func UnassignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <assignment_id>",
		Short: "Remove one duty assignment",
		Long:  "Delete an assignment so the match becomes assignable again; run revalidate afterwards to check the remaining schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Database.DeleteAssignment(app.Ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete assignment %s: %w", args[0], err)
			}
			fmt.Printf("✓ Assignment %s removed\n", args[0])
			return nil
		},
	}
}
