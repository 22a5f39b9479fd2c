package cli

import (
	"context"
	"fmt"

	"github.com/courtops/docket/internal/cli/formatter"
	"github.com/courtops/docket/internal/domain"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [phase]",
		Short: "Show the checklist, optionally scoped to one phase",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Checklists.Open(context.Background(), app.CaseID)
			if err != nil {
				return err
			}

			phases := domain.Phases
			if len(args) == 1 {
				p, err := domain.ParsePhase(args[0])
				if err != nil {
					return err
				}
				phases = []domain.Phase{p}
			}

			for _, p := range phases {
				items := sess.Phase(p)
				if len(items) == 0 && len(args) == 0 {
					continue
				}
				fmt.Print(formatter.FormatPhase(p, items))
				fmt.Println()
			}
			return nil
		},
	}
}

func newItemCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "item <item-id>",
		Short: "Show one checklist item in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Checklists.Open(context.Background(), app.CaseID)
			if err != nil {
				return err
			}
			it, err := sess.Item(args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatItem(it))
			return nil
		},
	}
}
