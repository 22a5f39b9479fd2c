package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/courtops/docket/internal/catalog"
	"github.com/courtops/docket/internal/cli"
	"github.com/courtops/docket/internal/db"
	"github.com/courtops/docket/internal/generation"
	"github.com/courtops/docket/internal/logging"
	"github.com/courtops/docket/internal/repository"
	"github.com/courtops/docket/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	setupLogging()

	// Determine DB path: env var or default ~/.docket/docket.db
	dbPath := os.Getenv("DOCKET_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".docket", "docket.db")
	}

	// Catalog: env var points at a YAML file, otherwise the embedded default.
	var cat *catalog.Catalog
	if path := os.Getenv("DOCKET_CATALOG"); path != "" {
		loaded, err := catalog.LoadFile(path)
		if err != nil {
			return fmt.Errorf("loading catalog %s: %w", path, err)
		}
		cat = loaded
	} else {
		loaded, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("loading embedded catalog: %w", err)
		}
		cat = loaded
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	snapshots := repository.NewSQLiteSnapshotStore(database)
	evidence := repository.NewSQLiteEvidenceRepo(database)
	activity := repository.NewSQLiteActivityRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Local collaborators behind checklist actions
	executor := service.NewActionExecutor(
		generation.NewLocalLetterGenerator(),
		generation.NewLocalDistributor(),
		generation.NewLocalFiler(),
		generation.NewLocalRecorder(),
	)

	checklists := service.NewChecklistService(
		cat, executor, snapshots, evidence, activity, uow,
		service.NewLogUseCaseObserver(logging.Component("usecase")),
	)

	app := &cli.App{Checklists: checklists}

	return cli.NewRootCmd(app).Execute()
}

// setupLogging keeps stderr quiet by default; DOCKET_LOG raises the level and
// an interactive terminal gets console-formatted output.
func setupLogging() {
	level := zerolog.WarnLevel
	if lv, err := zerolog.ParseLevel(os.Getenv("DOCKET_LOG")); err == nil && os.Getenv("DOCKET_LOG") != "" {
		level = lv
	}

	var out io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	logging.Setup(out, level)
}
