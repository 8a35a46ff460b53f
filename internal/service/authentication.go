package service

import (
	"context"
	"errors"

	"ai-hub/internal/database"
	"ai-hub/internal/model"
	"ai-hub/internal/store"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so login failures leak no account-existence information.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticate verifies email/password credentials and returns the user.
func Authenticate(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	user, err := store.GetUserByEmail(ctx, db, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
