package bracket

import (
	"testing"

	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gameIn(kind round.Kind, category round.Category, teams int) Game {
	return Game{
		ID:    uuid.New(),
		Phase: Phase{ID: uuid.New(), Round: kind, Teams: teams, Category: category},
	}
}

func TestSortGames(t *testing.T) {
	final := gameIn(round.Final, round.Gold, 2)
	semi := gameIn(round.Semifinal, round.Gold, 4)
	pool := gameIn(round.PoolA, round.Gold, 4)
	silverFinal := gameIn(round.Final, round.Silver, 2)

	games := []Game{silverFinal, final, pool, semi}
	require.NoError(t, SortGames(games))

	assert.Equal(t, pool.ID, games[0].ID)
	assert.Equal(t, semi.ID, games[1].ID)
	assert.Equal(t, final.ID, games[2].ID)
	assert.Equal(t, silverFinal.ID, games[3].ID)
}

func TestSortGames_League(t *testing.T) {
	games := []Game{
		gameIn(round.League, round.Gold, 6),
		gameIn(round.Final, round.Gold, 2),
	}
	first := games[0].ID

	err := SortGames(games)
	var unorderable *round.UnorderableError
	assert.ErrorAs(t, err, &unorderable)
	assert.Equal(t, first, games[0].ID)
}

func TestPlayerGender(t *testing.T) {
	testCases := []struct {
		division Division
		expected Gender
	}{
		{WomensOpen, Female},
		{Womens27, Female},
		{MensOpen, Male},
		{Mens30, Male},
		{Mens40, Male},
		{MixedOpen, Unknown},
		{SeniorMixedOpen, Unknown},
	}

	for _, tc := range testCases {
		t.Run(string(tc.division), func(t *testing.T) {
			g, err := PlayerGender(tc.division)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, g)
		})
	}

	_, err := PlayerGender("XX")
	assert.Error(t, err)
}

func TestTournamentTitle(t *testing.T) {
	div := MensOpen
	tournament := Tournament{Name: "Spring Cup", City: "Berlin", Country: "Germany", Division: &div}
	assert.Equal(t, "MO - Spring Cup (Berlin, Germany)", tournament.Title())

	tournament.City = ""
	assert.Equal(t, "MO - Spring Cup (Germany)", tournament.Title())

	tournament = Tournament{Name: "Open", City: "Madrid"}
	assert.Equal(t, "Open (Madrid)", tournament.Title())
	assert.Equal(t, "Mens Open", MensOpen.Name())
}

func TestTeamString(t *testing.T) {
	assert.Equal(t, "MXO - Los Rapidos", Team{Name: "Los Rapidos", Division: MixedOpen}.String())
	assert.Equal(t, "Los Rapidos", Team{Name: "Los Rapidos"}.String())
}
