package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"ai-hub/internal/database"
	"ai-hub/internal/dto"
	"ai-hub/internal/model"
	"ai-hub/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	*dest[0].(*int64) = u.ID
	*dest[1].(*string) = u.Email
	*dest[2].(*string) = u.PasswordHash
	*dest[3].(*int64) = u.UsageCount
	*dest[4].(*time.Time) = u.CreatedAt
	return nil
}

func TestLoginHandler(t *testing.T) {
	tokens := service.NewTokenService("testsecret", time.Minute)
	goodHash, err := service.HashPassword("pw123456")
	require.NoError(t, err)

	// malformed body
	e := echo.New()
	ctx, rec := newJSONCtx(e, "{not json")
	h := LoginHandler(&database.FakeDB{}, tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validation error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newJSONCtx(e, `{"email":"","password":""}`)
	h = LoginHandler(&database.FakeDB{}, tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown email
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, `{"email":"nobody@example.com","password":"pw123456"}`)
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return &fakeUserRow{scanErr: pgx.ErrNoRows}
	}}, tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid credentials")

	// wrong password: body must match the unknown-email response
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, `{"email":"alice@example.com","password":"wrong"}`)
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return &fakeUserRow{user: &model.User{ID: 1, Email: "alice@example.com", PasswordHash: goodHash}}
	}}, tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid credentials")

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, `{"email":"alice@example.com","password":"pw123456"}`)
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return &fakeUserRow{user: &model.User{ID: 1, Email: "alice@example.com", PasswordHash: goodHash, UsageCount: 3}}
	}}, tokens)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, int64(1), resp.User.ID)
	require.Equal(t, "alice@example.com", resp.User.Email)
	require.Equal(t, int64(3), resp.User.UsageCount)

	// the issued token verifies and binds the identity
	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
}
