package views

import (
	"context"

	users "github.com/AdamBeresnev/padel-rounds/internal/user"
)

func GetUser(ctx context.Context) *users.User {
	return users.FromContext(ctx)
}
