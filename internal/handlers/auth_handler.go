package handlers

import (
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"
	"tokoadmin/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

// AuthHandler serves account registration and login. Failures use the same
// plain-text bodies as the catalog routes.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validation.New(),
	}
}

func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// parse decodes and validates the request body into out. It writes the 400
// response itself and reports whether the handler may continue.
func (h *AuthHandler) parse(c *fiber.Ctx, op string, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		zlog.Debug().Err(err).Str("op", op).Msg("failed to parse request body")
		return false, c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}
	if err := h.validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).SendString(validation.First(err))
	}
	return true, nil
}

func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if ok, err := h.parse(c, "register", &user); !ok {
		return err
	}

	if err := h.authService.RegisterUser(c.UserContext(), &user); err != nil {
		return fail(c, "register", err)
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" label:"Username" validate:"required"`
	Password string `json:"password" label:"Password" validate:"required"`
}

func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := h.parse(c, "login", &req); !ok {
		return err
	}

	token, err := h.authService.LoginUser(c.UserContext(), req.Username, req.Password)
	if err != nil {
		zlog.Info().Str("username", req.Username).Msg("login rejected")
		return fail(c, "login", err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
