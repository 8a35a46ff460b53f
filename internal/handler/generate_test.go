package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-hub/internal/database"
	"ai-hub/internal/middleware"
	"ai-hub/internal/provider"
	"ai-hub/internal/service"
	"ai-hub/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func newGenerateCtx(e *echo.Echo, body string, claims *service.Claims) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if claims != nil {
		ctx.Set(middleware.ContextUserKey, claims)
	}
	return ctx, rec
}

func TestGenerateHandler(t *testing.T) {
	wp := worker.NewPool(1)
	defer wp.Stop()
	claims := &service.Claims{UserID: 7, Email: "alice@example.com"}

	ledger := func(usage, inserts *int) database.DB {
		return &database.FakeDB{
			BeginFn: func(context.Context) (pgx.Tx, error) {
				return &database.FakeTx{
					ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
						if strings.Contains(sql, "UPDATE users") {
							*usage++
							return pgconn.NewCommandTag("UPDATE 1"), nil
						}
						*inserts++
						return pgconn.NewCommandTag("INSERT 0 1"), nil
					},
				}, nil
			},
		}
	}

	// no claims in context
	e := echo.New()
	e.Validator = okValidator{}
	ctx, rec := newGenerateCtx(e, `{"prompt":"hello"}`, nil)
	gen := service.NewGenerationService(&database.FakeDB{}, nil, &provider.FakeClient{}, wp)
	require.NoError(t, GenerateHandler(gen)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// malformed body
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newGenerateCtx(e, "{not json", claims)
	require.NoError(t, GenerateHandler(gen)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// empty prompt
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newGenerateCtx(e, `{"prompt":"   ","toolType":"chat"}`, claims)
	require.NoError(t, GenerateHandler(gen)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// provider failure: 500, no ledger write
	usage, inserts := 0, 0
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newGenerateCtx(e, `{"prompt":"hello","toolType":"chat"}`, claims)
	failing := service.NewGenerationService(ledger(&usage, &inserts), nil, &provider.FakeClient{
		GenerateContentFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("provider down")
		},
	}, wp)
	require.NoError(t, GenerateHandler(failing)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "provider down")
	require.Equal(t, 0, usage)
	require.Equal(t, 0, inserts)

	// success: text returned, one increment, one history row
	usage, inserts = 0, 0
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newGenerateCtx(e, `{"prompt":"hello","toolType":"chat"}`, claims)
	ok := service.NewGenerationService(ledger(&usage, &inserts), nil, &provider.FakeClient{
		GenerateContentFn: func(_ context.Context, prompt, _ string) (string, error) {
			require.Equal(t, "hello", prompt)
			return "hi there", nil
		},
	}, wp)
	require.NoError(t, GenerateHandler(ok)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"text":"hi there"`)
	require.Equal(t, 1, usage)
	require.Equal(t, 1, inserts)
}
