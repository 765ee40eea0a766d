package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/juryplan/pkg/core/catalog"
)

// ConstraintsCmd creates the constraints command group
func ConstraintsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constraints",
		Short: "Inspect and edit the constraint catalog",
	}
	cmd.AddCommand(constraintsListCmd(app))
	cmd.AddCommand(constraintsEnableCmd(app, true))
	cmd.AddCommand(constraintsEnableCmd(app, false))
	cmd.AddCommand(constraintsSetWeightCmd(app))
	return cmd
}

func constraintsListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all constraint definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.New(app.Database)
			defs, err := cat.List(app.Ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\n📜 Constraint Catalog\n\n")
			for _, def := range defs {
				state := "enabled"
				if !def.Enabled {
					state = "disabled"
				}
				fmt.Printf("  %-24s %-4s w=%.1f p=%-3d %-12s %s (%s)\n",
					def.Code, def.Kind, def.Weight, def.PenaltyPoints, def.Category, def.Name, state)
			}
			fmt.Println()
			return nil
		},
	}
}

func constraintsEnableCmd(app *AppContext, enable bool) *cobra.Command {
	use, short := "enable <code>", "Enable a constraint"
	if !enable {
		use, short = "disable <code>", "Disable a constraint"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.New(app.Database)
			if err := cat.SetEnabled(app.Ctx, args[0], enable); err != nil {
				return err
			}
			fmt.Printf("✓ %s is now %s\n", args[0], map[bool]string{true: "enabled", false: "disabled"}[enable])
			return nil
		},
	}
}

func constraintsSetWeightCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-weight <code> <weight>",
		Short: "Change a constraint's weight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("weight must be a number: %w", err)
			}

			cat := catalog.New(app.Database)
			def, err := cat.Get(app.Ctx, args[0])
			if err != nil {
				return err
			}

			err = cat.ApplyUpdate(app.Ctx, args[0], catalog.Update{
				Name:          def.Name,
				Kind:          def.Kind,
				Category:      def.Category,
				Weight:        weight,
				PenaltyPoints: def.PenaltyPoints,
			})
			if err != nil {
				return err
			}
			fmt.Printf("✓ %s weight set to %.1f\n", args[0], weight)
			return nil
		},
	}
}
