package middleware

import (
	"net/http"
	"testing"
	"time"

	"sacred-journey/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(), func(c *fiber.Ctx) error {
		claims := Claims(c)
		return c.JSON(fiber.Map{"user_id": claims.UserID})
	})
	return app
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app := newProtectedApp()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareBadScheme(t *testing.T) {
	app := newProtectedApp()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	utils.SetSecret("test-secret")
	app := newProtectedApp()

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	utils.SetSecret("test-secret")
	app := newProtectedApp()

	token, err := utils.GenerateToken("u1", "maria@email.com", "pilgrim", "group_001", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
