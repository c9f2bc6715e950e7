package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AdamBeresnev/padel-rounds/internal/bracket"
	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/AdamBeresnev/padel-rounds/internal/score"
	"github.com/AdamBeresnev/padel-rounds/internal/store"
	"github.com/AdamBeresnev/padel-rounds/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GameService struct {
	db          *sqlx.DB
	store       *store.GameStore
	tournaments *store.TournamentStore
}

func NewGameService(db *sqlx.DB, store *store.GameStore, tournaments *store.TournamentStore) *GameService {
	return &GameService{db: db, store: store, tournaments: tournaments}
}

type GameInput struct {
	TournamentID uuid.UUID
	Phase        round.Key
	LocalID      *uuid.UUID
	VisitorID    *uuid.UUID
	Field        string
	StartTime    string
}

type GameData struct {
	Game    *bracket.Game
	Local   *bracket.Team
	Visitor *bracket.Team
	Field   *bracket.Field
	Pairs   []string
}

func (s *GameService) ScheduleGame(ctx context.Context, input GameInput) (uuid.UUID, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	id, err := s.ScheduleGameTx(ctx, tx, input)
	if err != nil {
		return uuid.Nil, err
	}
	return id, tx.Commit()
}

func (s *GameService) ScheduleGameTx(ctx context.Context, tx *sqlx.Tx, input GameInput) (uuid.UUID, error) {
	key, err := round.NewKey(input.Phase.Category, input.Phase.Kind, input.Phase.Teams)
	if err != nil {
		return uuid.Nil, err
	}
	if input.LocalID != nil && input.VisitorID != nil && *input.LocalID == *input.VisitorID {
		return uuid.Nil, fmt.Errorf("a team cannot play against itself")
	}

	for _, teamID := range []*uuid.UUID{input.LocalID, input.VisitorID} {
		if teamID == nil {
			continue
		}
		ok, err := s.tournaments.IsTeamInTournamentTx(ctx, tx, input.TournamentID, *teamID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to check team: %w", err)
		}
		if !ok {
			return uuid.Nil, fmt.Errorf("team %s is not part of this tournament", teamID)
		}
	}

	phase, err := s.store.GetOrCreatePhaseTx(ctx, tx, key)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get phase: %w", err)
	}

	game := bracket.Game{
		ID:           uuid.New(),
		TournamentID: input.TournamentID,
		PhaseID:      phase.ID,
		StartTime:    utils.StringOrNil(input.StartTime),
		LocalID:      input.LocalID,
		VisitorID:    input.VisitorID,
	}

	if fieldName := strings.TrimSpace(input.Field); fieldName != "" {
		field, err := s.store.GetOrCreateFieldTx(ctx, tx, fieldName)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to get field: %w", err)
		}
		game.FieldID = &field.ID
	}

	if err := s.store.CreateGames(ctx, tx, []bracket.Game{game}); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game.ID, nil
}

// RecordPadelResult parses the raw set scores of a result form and stores
// them on the game. Nothing is written when the scores are invalid.
func (s *GameService) RecordPadelResult(ctx context.Context, gameID uuid.UUID, rawScores []string) (*score.SetScore, error) {
	result, err := score.Parse(rawScores)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.RecordPadelResultTx(ctx, tx, gameID, result); err != nil {
		return nil, err
	}

	return &result, tx.Commit()
}

func (s *GameService) RecordPadelResultTx(ctx context.Context, tx *sqlx.Tx, gameID uuid.UUID, result score.SetScore) error {
	game, err := s.store.GetGameTx(ctx, tx, gameID.String())
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	return s.store.SaveResultTx(ctx, tx, game, result)
}

func (s *GameService) GetGameViewData(ctx context.Context, gameIDStr string) (*GameData, error) {
	game, err := s.store.GetGame(ctx, gameIDStr)
	if err != nil {
		return nil, err
	}

	data := &GameData{Game: game}
	if game.LocalID != nil {
		t, err := s.tournaments.GetTeam(ctx, game.LocalID.String())
		if err != nil {
			return nil, fmt.Errorf("failed to get local team: %w", err)
		}
		data.Local = t
	}
	if game.VisitorID != nil {
		t, err := s.tournaments.GetTeam(ctx, game.VisitorID.String())
		if err != nil {
			return nil, fmt.Errorf("failed to get visitor team: %w", err)
		}
		data.Visitor = t
	}
	if game.FieldID != nil {
		f, err := s.store.GetField(ctx, game.FieldID.String())
		if err != nil {
			return nil, fmt.Errorf("failed to get field: %w", err)
		}
		data.Field = f
	}
	if game.Result != nil {
		data.Pairs = game.Result.Pairs()
	}

	return data, nil
}
