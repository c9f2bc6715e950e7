package fixture

import (
	"context"
	"strings"
	"testing"

	"github.com/AdamBeresnev/padel-rounds/internal/db"
	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/AdamBeresnev/padel-rounds/internal/service"
	"github.com/AdamBeresnev/padel-rounds/internal/store"
	users "github.com/AdamBeresnev/padel-rounds/internal/user"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const valenciaOpen = `
tournament:
  name: Valencia Open
  type: padel
  country: Spain
  city: Valencia
  date: "2024-05-18"
  division: MXO
teams:
  - Los Rapidos
  - Bandeja Club
  - Vibora
  - Chiquita
games:
  - phase: {category: Gold, round: KO_1, teams: 2}
    local: Los Rapidos
    visitor: Bandeja Club
    field: Court 1
    time: "19:00"
    sets: ["6", "4", "3", "6", "7", "5"]
  - phase: {category: Gold, round: Pool_A, teams: 4}
    local: Vibora
    visitor: Chiquita
    sets: ["6", "2", "6", "1", "", ""]
  - phase: {category: Gold, round: KO_2, teams: 4}
    local: Los Rapidos
    visitor: Vibora
`

func TestLoad(t *testing.T) {
	f, err := Load(strings.NewReader(valenciaOpen))
	require.NoError(t, err)

	assert.Equal(t, "Valencia Open", f.Tournament.Name)
	require.Len(t, f.Games, 3)
	assert.Equal(t, round.Key{Category: round.Gold, Kind: round.Final, Teams: 2}, f.Games[0].Phase)

	d, err := f.date()
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		fixture string
		message string
	}{
		{
			name:    "unknown round",
			fixture: "tournament: {name: X}\ngames:\n  - phase: {category: Gold, round: KO_32, teams: 2}\n",
			message: "unknown round",
		},
		{
			name:    "unlisted team",
			fixture: "tournament: {name: X}\nteams: [A]\ngames:\n  - phase: {category: Gold, round: KO_1, teams: 2}\n    local: B\n",
			message: "not listed",
		},
		{
			name:    "bad set",
			fixture: "tournament: {name: X}\ngames:\n  - phase: {category: Gold, round: KO_1, teams: 2}\n    sets: [\"10\", \"abc\"]\n",
			message: "not a valid number",
		},
		{
			name:    "team listed twice",
			fixture: "tournament: {name: X}\nteams: [A, B, A]\n",
			message: "listed twice",
		},
		{
			name:    "team against itself",
			fixture: "tournament: {name: X}\nteams: [A, B]\ngames:\n  - phase: {category: Gold, round: KO_1, teams: 2}\n    local: A\n    visitor: A\n",
			message: "cannot play against itself",
		},
		{
			name:    "bad date",
			fixture: "tournament: {name: X, date: someday}\n",
			message: "invalid tournament date",
		},
		{
			name:    "unknown field",
			fixture: "tournament: {name: X}\nreferee: Y\n",
			message: "failed to decode",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.fixture))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

type testEnv struct {
	db          *sqlx.DB
	tournaments *service.TournamentService
	games       *service.GameService
	ctx         context.Context
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := db.Open("file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.RunMigrations(database.DB))

	tournamentStore := store.NewTournamentStore(database)
	gameStore := store.NewGameStore(database)

	_, err = service.NewUserService(store.NewUserStore(database)).EnsureGuestUser(context.Background())
	require.NoError(t, err)

	return &testEnv{
		db:          database,
		tournaments: service.NewTournamentService(database, tournamentStore, gameStore),
		games:       service.NewGameService(database, gameStore, tournamentStore),
		ctx:         users.WithUserID(context.Background(), users.GuestID),
	}
}

func (e *testEnv) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, e.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func TestImport(t *testing.T) {
	env := setupTestEnv(t)
	ctx, tournaments := env.ctx, env.tournaments

	f, err := Load(strings.NewReader(valenciaOpen))
	require.NoError(t, err)

	id, err := Import(ctx, env.db, f, tournaments, env.games)
	require.NoError(t, err)

	data, err := tournaments.GetTournamentData(ctx, id.String())
	require.NoError(t, err)
	assert.Len(t, data.Teams, 4)
	require.Len(t, data.Games, 3)

	// Pool, semifinal, final
	assert.Equal(t, round.PoolA, data.Games[0].Phase.Round)
	assert.Equal(t, []string{"6-2", "6-1"}, data.Games[0].Result.Pairs())
	assert.Equal(t, round.Semifinal, data.Games[1].Phase.Round)
	assert.Nil(t, data.Games[1].Result)
	assert.Equal(t, round.Final, data.Games[2].Phase.Round)
	assert.Equal(t, []string{"6-4", "3-6", "7-5"}, data.Games[2].Result.Pairs())
}

func TestImport_FailingGameLeavesNothing(t *testing.T) {
	env := setupTestEnv(t)

	// Built by hand so ScheduleGame rejects the second game, not Load
	f := &Fixture{
		Tournament: TournamentFixture{Name: "Valencia Open"},
		Teams:      []string{"Los Rapidos", "Bandeja Club"},
		Games: []GameFixture{
			{
				Phase:   round.Key{Category: round.Gold, Kind: round.Final, Teams: 2},
				Local:   "Los Rapidos",
				Visitor: "Bandeja Club",
				Field:   "Court 1",
				Sets:    []string{"6", "4", "6", "3"},
			},
			{
				Phase:   round.Key{Category: round.Gold, Kind: round.Semifinal, Teams: 4},
				Local:   "Los Rapidos",
				Visitor: "Los Rapidos",
			},
		},
	}

	_, err := Import(env.ctx, env.db, f, env.tournaments, env.games)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game 2")

	for _, table := range []string{"tournaments", "teams", "tournament_teams", "games", "padel_results", "phases", "fields"} {
		assert.Zero(t, env.count(t, table), table)
	}

	// Nothing from the failed run gets in the way of a corrected one
	f.Games = f.Games[:1]
	_, err = Import(env.ctx, env.db, f, env.tournaments, env.games)
	require.NoError(t, err)
	assert.Equal(t, 1, env.count(t, "tournaments"))
	assert.Equal(t, 1, env.count(t, "games"))
}
