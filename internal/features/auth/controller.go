package auth

import (
	"errors"
	"strings"

	"sacred-journey/internal/features/user"
	"sacred-journey/internal/middleware"
	"sacred-journey/internal/policy"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	AuthService AuthService
}

func NewAuthController(authService AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	GroupID  string `json:"group_id,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Token struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        user.UserResponse `json:"user"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Register a new admin or pilgrim account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterRequest true "Register Input"
// @Success      201  {object} user.UserResponse
// @Failure      400  {string} string "Invalid request body"
// @Failure      409  {string} string "Email already registered"
// @Router       /api/auth/register [post]
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A valid email is required",
		})
	}
	if req.Password == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "password and name are required",
		})
	}
	if !policy.ValidRole(req.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role must be admin or pilgrim",
		})
	}

	created, err := ctrl.AuthService.Register(c.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Email already registered",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Login godoc
// @Summary      Login
// @Description  Login with email and password, returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginRequest true "Login Input"
// @Success      200  {object} Token
// @Failure      400  {string} string "Invalid request body"
// @Failure      401  {string} string "Incorrect email or password"
// @Router       /api/auth/login [post]
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	token, err := ctrl.AuthService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Incorrect email or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to login",
		})
	}

	return c.JSON(token)
}

// Me godoc
// @Summary      Current user
// @Description  Get the account behind the presented bearer token
// @Tags         auth
// @Produce      json
// @Success      200  {object} user.UserResponse
// @Failure      401  {string} string "Could not validate credentials"
// @Router       /api/auth/me [get]
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	current, err := ctrl.AuthService.CurrentUser(c.Context(), claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch user",
		})
	}
	if current == nil {
		// Token is valid but the account is gone
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Could not validate credentials",
		})
	}

	return c.JSON(current)
}
