package cli

import (
	"context"
	"fmt"

	"github.com/courtops/docket/internal/cli/formatter"
	"github.com/courtops/docket/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run <item-id> [action-id]",
		Short: "Run one of an item's actions (the primary action by default)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := app.Checklists.Open(ctx, app.CaseID)
			if err != nil {
				return err
			}

			it, err := sess.Item(args[0])
			if err != nil {
				return err
			}

			var action domain.ActionDefinition
			if len(args) == 2 {
				found := false
				for _, a := range it.Actions {
					if a.ID == args[1] {
						action, found = a, true
						break
					}
				}
				if !found {
					return fmt.Errorf("item %q has no action %q", args[0], args[1])
				}
			} else {
				var ok bool
				action, ok = domain.PrimaryAction(it.Actions)
				if !ok {
					return fmt.Errorf("item %q has no actions", args[0])
				}
			}

			res, err := sess.RunAction(ctx, args[0], action.Request())
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("✓"), res.Activity.Title)
			if res.Activity.Subtitle != "" {
				fmt.Println("  " + formatter.Dim(res.Activity.Subtitle))
			}
			if res.Evidence.Href != "" {
				fmt.Println("  " + formatter.Dim(res.Evidence.Href))
			}
			return nil
		},
	}
}
