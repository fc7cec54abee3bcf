package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"sacred-journey/internal/features/user"

	"github.com/gofiber/fiber/v2"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	token       *Token
}

func (s *stubAuthService) Register(ctx context.Context, req *RegisterRequest) (*user.UserResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &user.UserResponse{ID: "u1", Email: req.Email, Name: req.Name, Role: req.Role}, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*Token, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.token, nil
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*user.UserResponse, error) {
	return nil, nil
}

func newTestApp(svc AuthService) *fiber.App {
	app := fiber.New()
	ctrl := NewAuthController(svc)
	app.Post("/api/auth/register", ctrl.Register)
	app.Post("/api/auth/login", ctrl.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestRegisterCreated(t *testing.T) {
	app := newTestApp(&stubAuthService{})

	resp := postJSON(t, app, "/api/auth/register", RegisterRequest{
		Email:    "maria@email.com",
		Password: "password",
		Name:     "Maria Santos",
		Role:     "pilgrim",
		GroupID:  "group_001",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created user.UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Email != "maria@email.com" {
		t.Errorf("expected email in response, got %q", created.Email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(&stubAuthService{registerErr: ErrEmailTaken})

	resp := postJSON(t, app, "/api/auth/register", RegisterRequest{
		Email:    "maria@email.com",
		Password: "password",
		Name:     "Maria Santos",
		Role:     "pilgrim",
	})
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(&stubAuthService{})

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing email", RegisterRequest{Password: "x", Name: "X", Role: "pilgrim"}},
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "x", Name: "X", Role: "pilgrim"}},
		{"missing password", RegisterRequest{Email: "a@b.com", Name: "X", Role: "pilgrim"}},
		{"bad role", RegisterRequest{Email: "a@b.com", Password: "x", Name: "X", Role: "guide"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/auth/register", tc.req)
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	app := newTestApp(&stubAuthService{
		token: &Token{
			AccessToken: "signed-token",
			TokenType:   "bearer",
			User:        user.UserResponse{ID: "u1", Email: "maria@email.com", Role: "pilgrim"},
		},
	})

	resp := postJSON(t, app, "/api/auth/login", LoginRequest{
		Email:    "maria@email.com",
		Password: "password",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var token Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if token.AccessToken != "signed-token" {
		t.Errorf("unexpected access token %q", token.AccessToken)
	}
	if token.TokenType != "bearer" {
		t.Errorf("expected token_type bearer, got %q", token.TokenType)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := newTestApp(&stubAuthService{loginErr: ErrInvalidCredentials})

	resp := postJSON(t, app, "/api/auth/login", LoginRequest{
		Email:    "maria@email.com",
		Password: "wrong",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
