package cli

import (
	"context"
	"fmt"

	"github.com/courtops/docket/internal/cli/formatter"
	"github.com/courtops/docket/internal/domain"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the case activity feed, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Checklists.Open(context.Background(), app.CaseID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatActivity(sess.Activity(), limit))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 for all)")

	return cmd
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show per-phase completion and translation backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Checklists.Open(context.Background(), app.CaseID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Case Progress"))
			for _, p := range domain.Phases {
				prog := sess.Progress(p)
				if prog.Total == 0 {
					continue
				}
				fmt.Print(formatter.FormatProgress(p, prog, sess.AwaitingTranslationCount(p)))
			}
			return nil
		},
	}
}
