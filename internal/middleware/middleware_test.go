package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-hub/internal/model"
	"ai-hub/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	return he.Code
}

func TestExtractClaims(t *testing.T) {
	tokens := service.NewTokenService("testsecret", time.Minute)

	// missing header -> 401
	ctx, _ := newContext("")
	_, err := extractClaims(ctx, tokens)
	require.Equal(t, http.StatusUnauthorized, httpStatus(t, err))

	// bad format -> 401
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx, tokens)
	require.Equal(t, http.StatusUnauthorized, httpStatus(t, err))

	// invalid token -> 403
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, tokens)
	require.Equal(t, http.StatusForbidden, httpStatus(t, err))

	// expired token -> 403
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte("testsecret"))
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	_, err = extractClaims(ctx, tokens)
	require.Equal(t, http.StatusForbidden, httpStatus(t, err))

	// valid token
	tok, err = tokens.Issue(model.User{ID: 1, Email: "alice@example.com"})
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	claims, err := extractClaims(ctx, tokens)
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)

	// scheme is case-insensitive
	ctx, _ = newContext("bearer " + tok)
	_, err = extractClaims(ctx, tokens)
	require.NoError(t, err)
}

func TestRequireAuth(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Minute)
	tok, err := tokens.Issue(model.User{ID: 2})
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(tokens)(func(c echo.Context) error {
		called = true
		cl := ClaimsFromContext(c)
		require.Equal(t, int64(2), cl.UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAuth(tokens)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestClaimsFromContextMissing(t *testing.T) {
	ctx, _ := newContext("")
	require.Nil(t, ClaimsFromContext(ctx))
}
