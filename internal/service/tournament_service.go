package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AdamBeresnev/padel-rounds/internal/bracket"
	"github.com/AdamBeresnev/padel-rounds/internal/store"
	users "github.com/AdamBeresnev/padel-rounds/internal/user"
	"github.com/AdamBeresnev/padel-rounds/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TournamentService struct {
	db    *sqlx.DB
	store *store.TournamentStore
	games *store.GameStore
}

func NewTournamentService(db *sqlx.DB, store *store.TournamentStore, games *store.GameStore) *TournamentService {
	return &TournamentService{db: db, store: store, games: games}
}

type TournamentInput struct {
	Name     string
	Type     bracket.TournamentType
	Country  string
	City     string
	Address  string
	Date     *time.Time
	Division bracket.Division
	Teams    []string
}

type TournamentData struct {
	Tournament *bracket.Tournament
	Teams      []bracket.Team
	// Ordered by phase
	Games []bracket.Game
}

func (s *TournamentService) GetTournamentData(ctx context.Context, id string) (*TournamentData, error) {
	tournament, err := s.store.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	teams, err := s.store.GetTeams(ctx, id)
	if err != nil {
		return nil, err
	}

	games, err := s.games.GetGames(ctx, id)
	if err != nil {
		return nil, err
	}

	// Games of two different pools have no order, so such a tournament
	// cannot be shown until one of the pools is renamed.
	if err := bracket.SortGames(games); err != nil {
		slog.Warn("games cannot be ordered", "tournament", id, "error", err)
		return nil, fmt.Errorf("failed to order games: %w", err)
	}

	return &TournamentData{
		Tournament: tournament,
		Teams:      teams,
		Games:      games,
	}, nil
}

func (s *TournamentService) GetTournamentsForUser(ctx context.Context) ([]bracket.Tournament, error) {
	userID, ok := users.UserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user ID not found in the context")
	}
	return s.store.GetTournamentsByUserID(ctx, userID)
}

func (s *TournamentService) CreateTournament(ctx context.Context, input TournamentInput) (uuid.UUID, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	tournament, _, err := s.CreateTournamentTx(ctx, tx, input)
	if err != nil {
		return uuid.Nil, err
	}

	return tournament.ID, tx.Commit()
}

// CreateTournamentTx inserts the tournament and its teams without
// committing, so callers can add games in the same transaction.
func (s *TournamentService) CreateTournamentTx(ctx context.Context, tx *sqlx.Tx, input TournamentInput) (*bracket.Tournament, []bracket.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, nil, fmt.Errorf("tournament name is required")
	}
	if input.Type == "" {
		input.Type = bracket.Padel
	}
	if input.Type != bracket.Padel && input.Type != bracket.Touch {
		return nil, nil, fmt.Errorf("unknown tournament type %q", input.Type)
	}
	if input.Division != "" && !input.Division.Valid() {
		return nil, nil, fmt.Errorf("division %q is not supported", input.Division)
	}

	ownerID, ok := users.UserIDFromContext(ctx)
	if !ok {
		return nil, nil, fmt.Errorf("user ID not found in the context")
	}

	tournament := bracket.Tournament{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Type:     input.Type,
		Name:     name,
		Country:  strings.TrimSpace(input.Country),
		City:     strings.TrimSpace(input.City),
		Address:  utils.StringOrNil(input.Address),
		Date:     input.Date,
		Division: utils.NilIfZero(input.Division),
	}

	if err := s.store.CreateTournament(ctx, tx, &tournament); err != nil {
		return nil, nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	var teams []bracket.Team
	var teamIDs []uuid.UUID
	for _, teamName := range input.Teams {
		teamName = strings.TrimSpace(teamName)
		if teamName == "" {
			continue
		}
		team := bracket.Team{ID: uuid.New(), Name: teamName, Division: input.Division}
		teams = append(teams, team)
		teamIDs = append(teamIDs, team.ID)
	}

	if err := s.store.CreateTeams(ctx, tx, teams); err != nil {
		return nil, nil, fmt.Errorf("failed to create teams: %w", err)
	}
	if err := s.store.AddTeams(ctx, tx, tournament.ID, teamIDs); err != nil {
		return nil, nil, fmt.Errorf("failed to add teams: %w", err)
	}

	return &tournament, teams, nil
}
