package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/codewithemma/account-microservice/internal/api/metrics"
	"github.com/codewithemma/account-microservice/internal/core/domain"
	"github.com/codewithemma/account-microservice/internal/core/ports"
)

type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// accountRequest is the validated body for create and update.
type accountRequest struct {
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"firstName" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	OtherName   string `json:"otherName"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
}

func toServiceRequest(req accountRequest) ports.AccountRequest {
	return ports.AccountRequest{
		Email:       req.Email,
		FirstName:   req.FirstName,
		Surname:     req.Surname,
		OtherName:   req.OtherName,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	}
}

// Create handles POST /api/v1/accounts. The business outcome travels inside
// the envelope; the transport status is 200 either way.
//
// @Summary      Create an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      accountRequest  true  "Account details"
// @Success      200   {object}  domain.Response
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resp := h.accountService.CreateAccount(c.Request().Context(), toServiceRequest(req))
	if resp.StatusCode == domain.StatusOK {
		metrics.AccountsCreatedTotal.Inc()
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/v1/accounts/:id — full-field replacement.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Account id"
// @Param        body  body      accountRequest  true  "Account details"
// @Success      200   {object}  domain.Response
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/accounts/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}

	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resp := h.accountService.UpdateAccount(c.Request().Context(), id, toServiceRequest(req))
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/accounts/:email.
//
// @Summary      Find an account by email
// @Tags         accounts
// @Produce      json
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  domain.Response
// @Router       /api/v1/accounts/{email} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	resp := h.accountService.FindAccountByEmail(c.Request().Context(), c.Param("email"))
	return c.JSON(http.StatusOK, resp)
}
