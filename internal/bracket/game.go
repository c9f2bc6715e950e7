package bracket

import (
	"time"

	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/AdamBeresnev/padel-rounds/internal/score"
	"github.com/google/uuid"
)

// Phase is a stored round of a tournament
type Phase struct {
	ID       uuid.UUID      `db:"id"`
	Round    round.Kind     `db:"round"`
	Teams    int            `db:"number_teams"`
	Category round.Category `db:"category"`
}

func (p Phase) Key() round.Key {
	return round.Key{Category: p.Category, Kind: p.Round, Teams: p.Teams}
}

type Game struct {
	ID           uuid.UUID `db:"id"`
	TournamentID uuid.UUID `db:"tournament_id"`
	PhaseID      uuid.UUID `db:"phase_id"`
	Phase        Phase     `db:"phase"`

	FieldID   *uuid.UUID `db:"field_id"`
	StartTime *string    `db:"start_time"`

	LocalID   *uuid.UUID `db:"local_id"`
	VisitorID *uuid.UUID `db:"visitor_id"`

	// Sets won for padel, points otherwise
	LocalScore   *int `db:"local_score"`
	VisitorScore *int `db:"visitor_score"`

	ResultID *uuid.UUID     `db:"result_padel_id"`
	Result   *score.SetScore `db:"-"`

	CreatedAt time.Time `db:"created_at"`
}

func (g *Game) HasResult() bool {
	return g.Result != nil && !g.Result.IsZero()
}

// SortGames orders games by their phase and leaves them untouched if two
// phases cannot be ordered.
func SortGames(games []Game) error {
	return round.SortFunc(games, func(g Game) round.Key { return g.Phase.Key() })
}
