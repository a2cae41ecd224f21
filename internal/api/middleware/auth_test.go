package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/service"
)

// invokeAuth runs the Auth middleware against a request carrying the given
// Authorization header. The verifying service always uses secret "secret".
func invokeAuth(t *testing.T, header string) (echo.Context, error) {
	t.Helper()

	tokens := service.NewTokenService("secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(tokens)(next)(c)
	return c, err
}

func bearerToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	tokens := service.NewTokenService(secret, ttl)
	token, err := tokens.Issue(&domain.User{
		ID:       "user-1",
		Username: "alice",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", httpErr.Code)
	}
}

func TestAuth_NonBearerHeader(t *testing.T) {
	_, err := invokeAuth(t, "Basic dXNlcjpwYXNz")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", httpErr.Code)
	}
}

func TestAuth_MalformedToken(t *testing.T) {
	_, err := invokeAuth(t, "Bearer not-a-token")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", httpErr.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := bearerToken(t, "secret", -time.Minute)
	_, err := invokeAuth(t, "Bearer "+token)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", httpErr.Code)
	}
}

func TestAuth_WrongSignature(t *testing.T) {
	token := bearerToken(t, "other-secret", time.Hour)
	_, err := invokeAuth(t, "Bearer "+token)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", httpErr.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	token := bearerToken(t, "secret", time.Hour)
	c, err := invokeAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if got := c.Get(CtxUserID); got != "user-1" {
		t.Fatalf("user_id = %v, want user-1", got)
	}
	if got := c.Get(CtxUsername); got != "alice" {
		t.Fatalf("username = %v, want alice", got)
	}
	if got := c.Get(CtxRole); got != domain.RoleUser {
		t.Fatalf("role = %v, want user", got)
	}
}

func TestAuth_LowercaseBearer(t *testing.T) {
	token := bearerToken(t, "secret", time.Hour)
	if _, err := invokeAuth(t, "bearer "+token); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}
