package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AdamBeresnev/padel-rounds/internal/config"
	"github.com/AdamBeresnev/padel-rounds/internal/db"
	"github.com/AdamBeresnev/padel-rounds/internal/fixture"
	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/AdamBeresnev/padel-rounds/internal/score"
	"github.com/AdamBeresnev/padel-rounds/internal/service"
	"github.com/AdamBeresnev/padel-rounds/internal/store"
	users "github.com/AdamBeresnev/padel-rounds/internal/user"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	inputFlag     = "input"
	dbFlag        = "db"
	stdinCLIName  = "-"
	exitUnordered = 2
	exitBadScore  = 3
)

var build string
var semanticVersion = "v0.1.0-dev" + build

func openInput(location string) (io.ReadCloser, error) {
	if location == stdinCLIName {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(location)
}

// sortKeys reads a YAML list of phases and writes it back in playing order.
func sortKeys(r io.Reader, w io.Writer) error {
	var keys []round.Key
	if err := yaml.NewDecoder(r).Decode(&keys); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode phases: %w", err)
	}

	if err := round.Sort(keys); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(keys); err != nil {
		return fmt.Errorf("encoding to YAML failed: %w", err)
	}
	return enc.Close()
}

func printScore(raw []string, w io.Writer) error {
	result, err := score.Parse(raw)
	if err != nil {
		return err
	}

	local, visitor := result.SetsWon()
	fmt.Fprintln(w, strings.Join(result.Pairs(), " "))
	fmt.Fprintf(w, "local: %s\n", joinInts(result.LocalScores()))
	fmt.Fprintf(w, "visitor: %s\n", joinInts(result.VisitorScores()))
	fmt.Fprintf(w, "sets: %d-%d\n", local, visitor)
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func importFixture(ctx context.Context, location, databasePath string) error {
	in, err := openInput(location)
	if err != nil {
		return err
	}
	defer in.Close()

	f, err := fixture.Load(in)
	if err != nil {
		return err
	}

	database, err := db.InitDB(databasePath)
	if err != nil {
		return err
	}
	defer database.Close()
	if err := db.RunMigrations(database.DB); err != nil {
		return err
	}

	tournamentStore := store.NewTournamentStore(database)
	gameStore := store.NewGameStore(database)

	// Imported tournaments belong to the guest until someone claims them
	guest, err := service.NewUserService(store.NewUserStore(database)).EnsureGuestUser(ctx)
	if err != nil {
		return err
	}
	ctx = users.WithUserID(ctx, guest.ID)

	id, err := fixture.Import(ctx, database, f,
		service.NewTournamentService(database, tournamentStore, gameStore),
		service.NewGameService(database, gameStore, tournamentStore),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Imported %q as %s\n", f.Tournament.Name, id)
	return nil
}

func main() {
	var inputLocation string
	var databasePath string

	inputFlagDef := &cli.StringFlag{
		Name:        inputFlag,
		Aliases:     []string{"i"},
		Usage:       "Path to the YAML file to read, or \"-\" for stdin",
		Value:       stdinCLIName,
		Destination: &inputLocation,
	}

	app := &cli.App{
		Name:    "rounds",
		Usage:   "Order tournament phases and check set scores",
		Version: semanticVersion,
		Commands: []*cli.Command{
			{
				Name:  "sort",
				Usage: "Sort a YAML list of phases into playing order",
				Flags: []cli.Flag{inputFlagDef},
				Action: func(cCtx *cli.Context) error {
					in, err := openInput(inputLocation)
					if err != nil {
						return err
					}
					defer in.Close()

					err = sortKeys(in, os.Stdout)
					var unorderable *round.UnorderableError
					if errors.As(err, &unorderable) {
						return cli.Exit(err.Error(), exitUnordered)
					}
					return err
				},
			},
			{
				Name:      "score",
				Usage:     "Parse alternating local and visitor set scores",
				ArgsUsage: "LOCAL VISITOR [LOCAL VISITOR]...",
				Action: func(cCtx *cli.Context) error {
					if err := printScore(cCtx.Args().Slice(), os.Stdout); err != nil {
						return cli.Exit(err.Error(), exitBadScore)
					}
					return nil
				},
			},
			{
				Name:  "import",
				Usage: "Load a tournament fixture into the database",
				Flags: []cli.Flag{
					inputFlagDef,
					&cli.StringFlag{
						Name:        dbFlag,
						Usage:       "SQLite database path, defaults to DATABASE_PATH",
						Destination: &databasePath,
					},
				},
				Action: func(cCtx *cli.Context) error {
					if databasePath == "" {
						cfg, err := config.Load()
						if err != nil {
							return err
						}
						databasePath = cfg.DatabasePath
					}
					return importFixture(cCtx.Context, inputLocation, databasePath)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
