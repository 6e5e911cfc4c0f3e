package handler

import (
	"log/slog"
	"net/http"

	"loocate/internal/delivery/http/response"
	"loocate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Logger  *slog.Logger
}

// TokenHandler holds dependencies for device token handlers
type TokenHandler struct {
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering a device token
type RegisterTokenRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform"`
}

// UnregisterTokenRequest represents the request body for removing a device token
type UnregisterTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegisterToken handles registering a push token for the caller
func (h *TokenHandler) RegisterToken(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.tokenUC.RegisterToken(c.Request().Context(), userID, req.Token, req.Platform)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token, "Push token registered successfully")
}

// UnregisterToken handles removing a push token
func (h *TokenHandler) UnregisterToken(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UnregisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.tokenUC.UnregisterToken(c.Request().Context(), userID, req.Token); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token removed"}, "Push token removed successfully")
}

// ListTokens handles retrieving the caller's registered push tokens
func (h *TokenHandler) ListTokens(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	tokens, err := h.tokenUC.ListTokens(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens, "Push tokens retrieved successfully")
}
