package store

import (
	"context"

	users "github.com/AdamBeresnev/padel-rounds/internal/user"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserStore keeps the organisers allowed to record results
type UserStore struct {
	db *sqlx.DB
}

const (
	getOrganiserQuery           = "SELECT * FROM users WHERE id = ?"
	getOrganiserByProviderQuery = "SELECT * FROM users WHERE provider = ? AND provider_id = ?"
	createOrganiserQuery        = `
		INSERT INTO users (id, email, username, provider, provider_id, avatar_url) VALUES
		(:id, :email, :username, :provider, :provider_id, :avatar_url)
	`
	updateProfileQuery = `
		UPDATE users SET
		email = :email,
		username = :username,
		avatar_url = :avatar_url
		WHERE id = :id
	`
)

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) GetUserByProvider(ctx context.Context, provider string, providerID string) (*users.User, error) {
	var user users.User
	if err := s.db.GetContext(ctx, &user, getOrganiserByProviderQuery, provider, providerID); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) GetUser(ctx context.Context, id uuid.UUID) (*users.User, error) {
	var user users.User
	if err := s.db.GetContext(ctx, &user, getOrganiserQuery, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) CreateUser(ctx context.Context, user *users.User) error {
	_, err := s.db.NamedExecContext(ctx, createOrganiserQuery, user)
	return err
}

// UpdateProfile refreshes what the login provider reports about the user
func (s *UserStore) UpdateProfile(ctx context.Context, user *users.User) error {
	_, err := s.db.NamedExecContext(ctx, updateProfileQuery, user)
	return err
}
