package cli

import (
	"context"
	"fmt"

	"github.com/courtops/docket/internal/cli/formatter"
	"github.com/courtops/docket/internal/domain"
	"github.com/spf13/cobra"
)

func newCycleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle <item-id>",
		Short: "Advance an item's status one step (pending, partial, complete)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := app.Checklists.Open(ctx, app.CaseID)
			if err != nil {
				return err
			}
			st, err := sess.CycleStatus(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StatusGlyph(st), st)
			return nil
		},
	}
}

func newLangCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lang <item-id> <language>",
		Short: "Advance one language version's status (pending, awaiting, complete)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := app.Checklists.Open(ctx, app.CaseID)
			if err != nil {
				return err
			}
			lang := domain.Language(args[1])
			st, err := sess.CycleLanguage(ctx, args[0], lang)
			if err != nil {
				return err
			}
			fmt.Println(formatter.LangBadge(lang, st))
			return nil
		},
	}
}

func newBlockCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "block <item-id>",
		Short: "Mark an item as blocked by an external decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setBlocked(app, args[0], true)
		},
	}
}

func newUnblockCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unblock <item-id>",
		Short: "Clear an item's blocked marker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setBlocked(app, args[0], false)
		},
	}
}

func setBlocked(app *App, itemID string, blocked bool) error {
	ctx := context.Background()
	sess, err := app.Checklists.Open(ctx, app.CaseID)
	if err != nil {
		return err
	}
	if err := sess.SetBlocked(ctx, itemID, blocked); err != nil {
		return err
	}
	it, err := sess.Item(itemID)
	if err != nil {
		return err
	}
	fmt.Println(formatter.DerivedIndicator(it.Derived()))
	return nil
}
