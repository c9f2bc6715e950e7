package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AdamBeresnev/padel-rounds/internal/bracket"
	"github.com/AdamBeresnev/padel-rounds/internal/round"
	"github.com/AdamBeresnev/padel-rounds/internal/score"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type GameStore struct {
	db *sqlx.DB
}

func NewGameStore(db *sqlx.DB) *GameStore {
	return &GameStore{db: db}
}

const (
	selectGameQuery = `
		SELECT g.*,
			p.id AS "phase.id",
			p.round AS "phase.round",
			p.number_teams AS "phase.number_teams",
			p.category AS "phase.category"
		FROM games g
		JOIN phases p ON p.id = g.phase_id
	`
	upsertPadelResultQuery = `
		INSERT INTO padel_results (id, local1, visitor1, local2, visitor2, local3, visitor3, local4, visitor4, local5, visitor5)
		VALUES (:id, :local1, :visitor1, :local2, :visitor2, :local3, :visitor3, :local4, :visitor4, :local5, :visitor5)
		ON CONFLICT (id) DO UPDATE SET
			local1 = excluded.local1, visitor1 = excluded.visitor1,
			local2 = excluded.local2, visitor2 = excluded.visitor2,
			local3 = excluded.local3, visitor3 = excluded.visitor3,
			local4 = excluded.local4, visitor4 = excluded.visitor4,
			local5 = excluded.local5, visitor5 = excluded.visitor5
	`
)

// padelResultRow is the flat shape of a score, five sets times two sides
type padelResultRow struct {
	ID       uuid.UUID `db:"id"`
	Local1   *int      `db:"local1"`
	Visitor1 *int      `db:"visitor1"`
	Local2   *int      `db:"local2"`
	Visitor2 *int      `db:"visitor2"`
	Local3   *int      `db:"local3"`
	Visitor3 *int      `db:"visitor3"`
	Local4   *int      `db:"local4"`
	Visitor4 *int      `db:"visitor4"`
	Local5   *int      `db:"local5"`
	Visitor5 *int      `db:"visitor5"`
}

func newPadelResultRow(id uuid.UUID, s score.SetScore) padelResultRow {
	c := s.Columns()
	return padelResultRow{
		ID:     id,
		Local1: c[0], Visitor1: c[1],
		Local2: c[2], Visitor2: c[3],
		Local3: c[4], Visitor3: c[5],
		Local4: c[6], Visitor4: c[7],
		Local5: c[8], Visitor5: c[9],
	}
}

func (r padelResultRow) setScore() (score.SetScore, error) {
	return score.FromColumns([2 * score.MaxSets]*int{
		r.Local1, r.Visitor1,
		r.Local2, r.Visitor2,
		r.Local3, r.Visitor3,
		r.Local4, r.Visitor4,
		r.Local5, r.Visitor5,
	})
}

// GetOrCreatePhaseTx returns the phase row for key, inserting it if needed.
func (s *GameStore) GetOrCreatePhaseTx(ctx context.Context, tx *sqlx.Tx, key round.Key) (*bracket.Phase, error) {
	var phase bracket.Phase
	err := tx.GetContext(ctx, &phase, "SELECT * FROM phases WHERE round = ? AND number_teams = ? AND category = ?", key.Kind, key.Teams, key.Category)
	if err == nil {
		return &phase, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	phase = bracket.Phase{ID: uuid.New(), Round: key.Kind, Teams: key.Teams, Category: key.Category}
	_, err = tx.NamedExecContext(ctx, `INSERT INTO phases (id, round, number_teams, category) VALUES (:id, :round, :number_teams, :category)`, phase)
	if err != nil {
		return nil, err
	}
	return &phase, nil
}

func (s *GameStore) GetOrCreateFieldTx(ctx context.Context, tx *sqlx.Tx, name string) (*bracket.Field, error) {
	var field bracket.Field
	err := tx.GetContext(ctx, &field, "SELECT * FROM fields WHERE name = ?", name)
	if err == nil {
		return &field, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	field = bracket.Field{ID: uuid.New(), Name: name}
	if _, err := tx.NamedExecContext(ctx, "INSERT INTO fields (id, name) VALUES (:id, :name)", field); err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *GameStore) GetField(ctx context.Context, id string) (*bracket.Field, error) {
	var field bracket.Field
	if err := s.db.GetContext(ctx, &field, "SELECT * FROM fields WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *GameStore) CreateGames(ctx context.Context, tx *sqlx.Tx, games []bracket.Game) error {
	if len(games) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, `INSERT INTO games (id, tournament_id, phase_id, field_id, start_time, local_id, visitor_id, local_score, visitor_score)
		VALUES (:id, :tournament_id, :phase_id, :field_id, :start_time, :local_id, :visitor_id, :local_score, :visitor_score)`, games)
	return err
}

func (s *GameStore) GetGame(ctx context.Context, id string) (*bracket.Game, error) {
	return getGame(ctx, s.db, id)
}

func (s *GameStore) GetGameTx(ctx context.Context, tx *sqlx.Tx, id string) (*bracket.Game, error) {
	return getGame(ctx, tx, id)
}

func getGame(ctx context.Context, q sqlx.QueryerContext, id string) (*bracket.Game, error) {
	var game bracket.Game
	if err := sqlx.GetContext(ctx, q, &game, selectGameQuery+" WHERE g.id = ?", id); err != nil {
		return nil, err
	}
	if err := loadResult(ctx, q, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// GetGames returns the games of a tournament in insertion order, callers
// decide how to rank them.
func (s *GameStore) GetGames(ctx context.Context, tournamentID string) ([]bracket.Game, error) {
	var games []bracket.Game
	err := s.db.SelectContext(ctx, &games, selectGameQuery+" WHERE g.tournament_id = ? ORDER BY g.created_at ASC, g.start_time ASC", tournamentID)
	if err != nil {
		return nil, err
	}

	for i := range games {
		if err := loadResult(ctx, s.db, &games[i]); err != nil {
			return nil, err
		}
	}
	return games, nil
}

func loadResult(ctx context.Context, q sqlx.QueryerContext, game *bracket.Game) error {
	if game.ResultID == nil {
		return nil
	}

	var row padelResultRow
	if err := sqlx.GetContext(ctx, q, &row, "SELECT * FROM padel_results WHERE id = ?", *game.ResultID); err != nil {
		return fmt.Errorf("failed to get result of game %s: %w", game.ID, err)
	}
	result, err := row.setScore()
	if err != nil {
		return fmt.Errorf("stored result of game %s is corrupt: %w", game.ID, err)
	}
	game.Result = &result
	return nil
}

// SaveResultTx stores result for the game, replacing any earlier one, and
// records the sets won as the game score.
func (s *GameStore) SaveResultTx(ctx context.Context, tx *sqlx.Tx, game *bracket.Game, result score.SetScore) error {
	resultID := uuid.New()
	if game.ResultID != nil {
		resultID = *game.ResultID
	}

	if _, err := tx.NamedExecContext(ctx, upsertPadelResultQuery, newPadelResultRow(resultID, result)); err != nil {
		return fmt.Errorf("failed to save padel result: %w", err)
	}

	local, visitor := result.SetsWon()
	_, err := tx.ExecContext(ctx, "UPDATE games SET result_padel_id = ?, local_score = ?, visitor_score = ? WHERE id = ?",
		resultID, local, visitor, game.ID)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	game.ResultID = &resultID
	game.LocalScore = &local
	game.VisitorScore = &visitor
	game.Result = &result
	return nil
}
