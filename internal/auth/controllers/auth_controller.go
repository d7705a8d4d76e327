package controllers

import (
	"errors"
	"net/http"

	authModels "github.com/c14220110/clinic-portal/internal/auth/models"
	"github.com/c14220110/clinic-portal/internal/auth/services"
	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/labstack/echo/v4"
)

// AuthController menangani halaman login, logout, dan registrasi.
type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

// LoginPage GET /login
func (ac *AuthController) LoginPage(c echo.Context) error {
	page := ac.Service.CurrentPage(c.Request().Context(), middlewares.SessionContext(c))
	return utils.JSON(c, http.StatusOK, "Login page", page)
}

// Login POST /login
func (ac *AuthController) Login(c echo.Context) error {
	var req authModels.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequest(c, utils.ValidationMessage(err))
	}

	result, err := ac.Service.Login(c.Request().Context(), middlewares.SessionContext(c), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid email or password")
		}
		return utils.JSON(c, http.StatusInternalServerError, "Failed to start session", nil)
	}
	return utils.JSON(c, http.StatusOK, "Login successful", result)
}

// Logout POST /logout
func (ac *AuthController) Logout(c echo.Context) error {
	if err := ac.Service.Logout(c.Request().Context(), middlewares.SessionContext(c)); err != nil {
		return utils.JSON(c, http.StatusInternalServerError, "Failed to clear session", nil)
	}
	return utils.JSON(c, http.StatusOK, "Logged out", map[string]string{"redirect": "/login"})
}

// Register POST /register
func (ac *AuthController) Register(c echo.Context) error {
	var req authModels.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequest(c, utils.ValidationMessage(err))
	}

	user, err := ac.Service.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrPasswordMismatch) {
			return utils.BadRequest(c, "Passwords do not match")
		}
		return utils.ActionFailed(c, err, "Registration failed. Please try again.")
	}
	return utils.JSON(c, http.StatusCreated, "Registration successful", map[string]interface{}{
		"user":     user,
		"redirect": "/login?registered=true",
	})
}

// Healthz GET /healthz
func (ac *AuthController) Healthz(c echo.Context) error {
	return utils.JSON(c, http.StatusOK, "ok", nil)
}
