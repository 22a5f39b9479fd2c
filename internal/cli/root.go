package cli

import (
	"github.com/courtops/docket/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces used by CLI commands, plus the case scope
// shared across them.
type App struct {
	Checklists service.ChecklistService

	CaseID string
}

// NewRootCmd creates the top-level "docket" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "docket",
		Short: "Procedural checklist tracker for contentious proceedings",
	}

	root.PersistentFlags().StringVar(&app.CaseID, "case", "default", "Case identifier")

	root.AddCommand(
		newShowCmd(app),
		newItemCmd(app),
		newCycleCmd(app),
		newLangCmd(app),
		newRunCmd(app),
		newBlockCmd(app),
		newUnblockCmd(app),
		newActivityCmd(app),
		newProgressCmd(app),
		newTUICmd(app),
	)

	return root
}
