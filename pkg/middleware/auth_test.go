package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bank-dashboard/pkg/contextkeys"
	"bank-dashboard/pkg/service"
)

func runAuth(t *testing.T, m *AuthMiddleware, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/crud/tables", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var username string
	handler := m.Auth(func(c echo.Context) error {
		username, _ = c.Request().Context().Value(contextkeys.UsernameKey).(string)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, username
}

func TestAuth(t *testing.T) {
	jwtSvc := service.NewJWTService("secret", time.Hour)
	m := NewAuthMiddleware(jwtSvc, true, zap.NewNop())

	rec, _ := runAuth(t, m, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runAuth(t, m, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runAuth(t, m, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := jwtSvc.GenerateToken("admin")
	require.NoError(t, err)
	rec, username := runAuth(t, m, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", username)
}

func TestAuth_Disabled(t *testing.T) {
	m := NewAuthMiddleware(service.NewJWTService("secret", time.Hour), false, zap.NewNop())
	rec, _ := runAuth(t, m, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
