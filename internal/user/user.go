package users

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ContextKey string

const (
	UserKey   ContextKey = "user"
	UserIDKey ContextKey = "userID"
)

// GuestID is the shared account used when nobody signs in with a provider
var GuestID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// User organises tournaments and records their results
type User struct {
	ID         uuid.UUID `db:"id"`
	Email      string    `db:"email"`
	Username   string    `db:"username"`
	CreatedAt  time.Time `db:"created_at"`
	Provider   *string   `db:"provider"`
	ProviderID *string   `db:"provider_id"`
	AvatarURL  *string   `db:"avatar_url"`
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}

func FromContext(ctx context.Context) *User {
	user, _ := ctx.Value(UserKey).(*User)
	return user
}
