package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codewithemma/account-microservice/internal/api/metrics"
	"github.com/codewithemma/account-microservice/internal/core/domain"
	"github.com/codewithemma/account-microservice/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/v1/auth. Success wraps {token}; any credential
// failure echoes the request with INVALID_CREDENTIALS, always over HTTP 200.
//
// @Summary      Authenticate and issue a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  domain.Response
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resp := h.authService.Login(c.Request().Context(), ports.AuthRequest{
		Username: req.Username,
		Password: req.Password,
	})

	switch resp.StatusCode {
	case domain.StatusOK:
		metrics.LoginsTotal.WithLabelValues("success").Inc()
	case domain.StatusInvalidCredentials:
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
	default:
		metrics.LoginsTotal.WithLabelValues("error").Inc()
	}

	return c.JSON(http.StatusOK, resp)
}
