package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

type stubAuthService struct {
	registerResult *ports.AuthResult
	registerErr    error
	loginResult    *ports.AuthResult
	loginErr       error

	lastRegister ports.RegisterInput
	lastEmail    string
	lastPassword string
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	s.lastRegister = input
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.AuthResult, error) {
	s.lastEmail = email
	s.lastPassword = password
	return s.loginResult, s.loginErr
}

// newJSONContext builds an Echo context with the validator wired, the way the
// router configures it.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

const registerBody = `{"username":"alice","email":"alice@x.com","password":"secret1","firstName":"Alice","lastName":"Smith","age":30}`

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{
		registerResult: &ports.AuthResult{
			Token: "token-1",
			User:  &domain.User{ID: "user-1", Username: "alice", Role: domain.RoleUser},
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/auth/register", registerBody)

	if err := NewAuthHandler(svc).Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp authResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "User registered successfully" {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.Token != "token-1" {
		t.Fatalf("token = %q", resp.Token)
	}
	if svc.lastRegister.Username != "alice" || svc.lastRegister.Age != 30 {
		t.Fatalf("input not forwarded: %+v", svc.lastRegister)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	svc := &stubAuthService{registerErr: domain.ErrUserExists}
	c, rec := newJSONContext(http.MethodPost, "/api/auth/register", registerBody)

	if err := NewAuthHandler(svc).Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `{{`},
		{"missing email", `{"username":"alice","password":"secret1","firstName":"A","lastName":"S"}`},
		{"bad email", `{"username":"alice","email":"nope","password":"secret1","firstName":"A","lastName":"S"}`},
		{"short password", `{"username":"alice","email":"a@x.com","password":"12345","firstName":"A","lastName":"S"}`},
		{"short username", `{"username":"al","email":"a@x.com","password":"secret1","firstName":"A","lastName":"S"}`},
		{"underage", `{"username":"alice","email":"a@x.com","password":"secret1","firstName":"A","lastName":"S","age":12}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAuthService{}
			c, rec := newJSONContext(http.MethodPost, "/api/auth/register", tc.body)
			if err := NewAuthHandler(svc).Register(c); err != nil {
				t.Fatalf("Register returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login_OK(t *testing.T) {
	svc := &stubAuthService{
		loginResult: &ports.AuthResult{
			Token: "token-2",
			User:  &domain.User{ID: "user-1", Username: "alice"},
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"alice@x.com","password":"secret1"}`)

	if err := NewAuthHandler(svc).Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp authResponse
	decodeBody(t, rec, &resp)
	if resp.Message != "Login successful" || resp.Token != "token-2" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if svc.lastEmail != "alice@x.com" {
		t.Fatalf("email not forwarded: %q", svc.lastEmail)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"alice@x.com","password":"wrong"}`)

	if err := NewAuthHandler(svc).Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var resp errorResponse
	decodeBody(t, rec, &resp)
	if resp.Error != "invalid credentials" {
		t.Fatalf("error = %q", resp.Error)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	svc := &stubAuthService{}
	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"alice@x.com"}`)

	if err := NewAuthHandler(svc).Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
