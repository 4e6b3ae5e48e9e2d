package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet/config"
	"fleet/internal/domain/entity"
	"fleet/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

func newAuthTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func performAuth(t *testing.T, m *AuthMiddleware, authHeader string) (echo.Context, *httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/deliveries", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := m.Authenticate(next)(c)

	return c, rec, err
}

func TestAuthMiddleware_Authenticate_SetsUserAndRoles(t *testing.T) {
	tokenSvc := auth.NewJWTService()
	m := NewAuthMiddleware(tokenSvc, newAuthTestConfig())
	userID := uuid.New()

	token, err := tokenSvc.GenerateToken(userID.String(), []string{"customer", "owner"}, testSecret, time.Minute)
	require.NoError(t, err)

	c, rec, err := performAuth(t, m, "Bearer "+token)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get("userID"))
	assert.Equal(t, []string{"customer", "owner"}, c.Get("roles"))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService(), newAuthTestConfig())

	_, rec, err := performAuth(t, m, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_WrongSecret(t *testing.T) {
	tokenSvc := auth.NewJWTService()
	m := NewAuthMiddleware(tokenSvc, newAuthTestConfig())

	token, err := tokenSvc.GenerateToken(uuid.New().String(), []string{"customer"}, "other-secret", time.Minute)
	require.NoError(t, err)

	_, rec, err := performAuth(t, m, "Bearer "+token)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_ExpiredToken(t *testing.T) {
	tokenSvc := auth.NewJWTService()
	m := NewAuthMiddleware(tokenSvc, newAuthTestConfig())

	token, err := tokenSvc.GenerateToken(uuid.New().String(), []string{"customer"}, testSecret, -time.Minute)
	require.NoError(t, err)

	_, rec, err := performAuth(t, m, "Bearer "+token)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService(), newAuthTestConfig())

	run := func(roles any) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/deliveries/id/update-location", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if roles != nil {
			c.Set("roles", roles)
		}

		next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
		require.NoError(t, m.RequireRole(entity.RoleDeliveryAgent)(next)(c))

		return rec
	}

	assert.Equal(t, http.StatusOK, run([]string{"delivery_agent"}).Code)
	assert.Equal(t, http.StatusForbidden, run([]string{"customer"}).Code)
	assert.Equal(t, http.StatusForbidden, run(nil).Code)
}

func TestAuthMiddleware_RequireAnyRole(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService(), newAuthTestConfig())

	run := func(roles []string) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/deliveries/id/update-status", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("roles", roles)

		next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
		require.NoError(t, m.RequireAnyRole(entity.RoleDeliveryAgent, entity.RoleOwner)(next)(c))

		return rec
	}

	assert.Equal(t, http.StatusOK, run([]string{"owner"}).Code)
	assert.Equal(t, http.StatusOK, run([]string{"customer", "delivery_agent"}).Code)
	assert.Equal(t, http.StatusForbidden, run([]string{"customer"}).Code)
}
