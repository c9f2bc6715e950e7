package store

import (
	"context"

	"github.com/AdamBeresnev/padel-rounds/internal/bracket"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TournamentStore struct {
	db *sqlx.DB
}

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

func (s *TournamentStore) CreateTournament(ctx context.Context, tx *sqlx.Tx, tournament *bracket.Tournament) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO tournaments (id, owner_id, tournament_type, name, country, city, address, date, division)
        VALUES (:id, :owner_id, :tournament_type, :name, :country, :city, :address, :date, :division)`, tournament)
	return err
}

func (s *TournamentStore) CreateTeams(ctx context.Context, tx *sqlx.Tx, teams []bracket.Team) error {
	if len(teams) == 0 {
		return nil
	}
	_, err := tx.NamedExecContext(ctx, `INSERT INTO teams (id, name, division) VALUES (:id, :name, :division)`, teams)
	return err
}

func (s *TournamentStore) AddTeams(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID, teamIDs []uuid.UUID) error {
	for _, id := range teamIDs {
		_, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO tournament_teams (tournament_id, team_id) VALUES (?, ?)", tournamentID, id)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *TournamentStore) GetTournament(ctx context.Context, id string) (*bracket.Tournament, error) {
	var tournament bracket.Tournament
	err := s.db.GetContext(ctx, &tournament, "SELECT * FROM tournaments WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (s *TournamentStore) GetTournamentsByUserID(ctx context.Context, userID uuid.UUID) ([]bracket.Tournament, error) {
	var tournaments []bracket.Tournament
	err := s.db.SelectContext(ctx, &tournaments, "SELECT * FROM tournaments WHERE owner_id = ? ORDER BY name ASC", userID)
	return tournaments, err
}

func (s *TournamentStore) GetTeams(ctx context.Context, tournamentID string) ([]bracket.Team, error) {
	var teams []bracket.Team
	err := s.db.SelectContext(ctx, &teams, `SELECT t.* FROM teams t
		JOIN tournament_teams tt ON tt.team_id = t.id
		WHERE tt.tournament_id = ? ORDER BY t.name ASC`, tournamentID)
	return teams, err
}

func (s *TournamentStore) GetTeam(ctx context.Context, id string) (*bracket.Team, error) {
	var team bracket.Team
	err := s.db.GetContext(ctx, &team, "SELECT * FROM teams WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TournamentStore) IsTeamInTournamentTx(ctx context.Context, tx *sqlx.Tx, tournamentID, teamID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM tournament_teams WHERE tournament_id = ? AND team_id = ?)", tournamentID, teamID)
	return exists, err
}
