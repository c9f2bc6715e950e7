// Package fixture loads whole tournaments, games and results included,
// from YAML files.
package fixture

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AdamBeresnev/padel-rounds/internal/bracket"
	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/AdamBeresnev/padel-rounds/internal/score"
	"github.com/AdamBeresnev/padel-rounds/internal/service"
	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"
)

type Fixture struct {
	Tournament TournamentFixture `yaml:"tournament"`
	Teams      []string          `yaml:"teams"`
	Games      []GameFixture     `yaml:"games"`
}

type TournamentFixture struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type,omitempty"`
	Country  string `yaml:"country,omitempty"`
	City     string `yaml:"city,omitempty"`
	Address  string `yaml:"address,omitempty"`
	Date     string `yaml:"date,omitempty"`
	Division string `yaml:"division,omitempty"`
}

type GameFixture struct {
	Phase   round.Key `yaml:"phase"`
	Local   string    `yaml:"local,omitempty"`
	Visitor string    `yaml:"visitor,omitempty"`
	Field   string    `yaml:"field,omitempty"`
	Time    string    `yaml:"time,omitempty"`
	// Alternating local/visitor set scores
	Sets []string `yaml:"sets,omitempty"`
}

// Load decodes a fixture and checks everything that can be checked
// without a database: dates, phases, team names and set scores.
func Load(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	if _, err := f.date(); err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(f.Teams))
	for _, t := range f.Teams {
		name := strings.TrimSpace(t)
		if known[name] {
			return nil, fmt.Errorf("team %q is listed twice", name)
		}
		known[name] = true
	}

	for i, g := range f.Games {
		if _, err := round.NewKey(g.Phase.Category, g.Phase.Kind, g.Phase.Teams); err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}
		for _, name := range []string{g.Local, g.Visitor} {
			if name != "" && !known[name] {
				return nil, fmt.Errorf("game %d: team %q is not listed under teams", i+1, name)
			}
		}
		if g.Local != "" && g.Local == g.Visitor {
			return nil, fmt.Errorf("game %d: team %q cannot play against itself", i+1, g.Local)
		}
		if len(g.Sets) > 0 {
			if _, err := score.Parse(g.Sets); err != nil {
				return nil, fmt.Errorf("game %d: %w", i+1, err)
			}
		}
	}

	return &f, nil
}

func (f *Fixture) date() (*time.Time, error) {
	if f.Tournament.Date == "" {
		return nil, nil
	}
	d, err := dateparse.ParseAny(f.Tournament.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid tournament date %q: %w", f.Tournament.Date, err)
	}
	return &d, nil
}

// Import creates the tournament with its teams, schedules every game and
// records the results that have sets. Everything is written in one
// transaction, a failing game leaves nothing behind.
func Import(ctx context.Context, db *sqlx.DB, f *Fixture, tournaments *service.TournamentService, games *service.GameService) (uuid.UUID, error) {
	date, err := f.date()
	if err != nil {
		return uuid.Nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	tournament, teams, err := tournaments.CreateTournamentTx(ctx, tx, service.TournamentInput{
		Name:     f.Tournament.Name,
		Type:     bracket.TournamentType(strings.ToUpper(f.Tournament.Type)),
		Country:  f.Tournament.Country,
		City:     f.Tournament.City,
		Address:  f.Tournament.Address,
		Date:     date,
		Division: bracket.Division(f.Tournament.Division),
		Teams:    f.Teams,
	})
	if err != nil {
		return uuid.Nil, err
	}

	teamIDs := make(map[string]uuid.UUID, len(teams))
	for _, t := range teams {
		teamIDs[t.Name] = t.ID
	}
	lookup := func(name string) *uuid.UUID {
		if id, ok := teamIDs[strings.TrimSpace(name)]; ok {
			return &id
		}
		return nil
	}

	for i, g := range f.Games {
		gameID, err := games.ScheduleGameTx(ctx, tx, service.GameInput{
			TournamentID: tournament.ID,
			Phase:        g.Phase,
			LocalID:      lookup(g.Local),
			VisitorID:    lookup(g.Visitor),
			Field:        g.Field,
			StartTime:    g.Time,
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		if len(g.Sets) == 0 {
			continue
		}
		result, err := score.Parse(g.Sets)
		if err != nil {
			return uuid.Nil, fmt.Errorf("game %d: %w", i+1, err)
		}
		if err := games.RecordPadelResultTx(ctx, tx, gameID, result); err != nil {
			return uuid.Nil, fmt.Errorf("game %d: %w", i+1, err)
		}
	}

	return tournament.ID, tx.Commit()
}
