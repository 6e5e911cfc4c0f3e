package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"loocate/internal/delivery/http/response"
	domainerrors "loocate/internal/domain/errors"
	"loocate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PositionHandlerParams holds dependencies for PositionHandler, injected by Fx.
type PositionHandlerParams struct {
	fx.In

	PositionUC  usecase.PositionUsecase
	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// PositionHandler holds dependencies for position and proximity handlers
type PositionHandler struct {
	positionUC  usecase.PositionUsecase
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewPositionHandler is the constructor for PositionHandler
func NewPositionHandler(params PositionHandlerParams) *PositionHandler {
	return &PositionHandler{
		positionUC:  params.PositionUC,
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// UpdatePositionRequest represents the request body for a position update
type UpdatePositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// UpdatePosition handles publishing the caller's current position
func (h *PositionHandler) UpdatePosition(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdatePositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	position, err := h.positionUC.UpdatePosition(c.Request().Context(), userID, req.Longitude, req.Latitude)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, position, "Position updated successfully")
}

// GetPosition handles retrieving the caller's stored position
func (h *PositionHandler) GetPosition(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	position, err := h.positionUC.GetPosition(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, position, "Position retrieved successfully")
}

// GetNearby handles the radius discovery query around the caller's position
func (h *PositionHandler) GetNearby(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	radiusMeters := 0.0
	if raw := c.QueryParam("radius"); raw != "" {
		radiusMeters, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "Radius must be a number of meters")
		}
	}

	nearby, err := h.proximityUC.FindNearby(c.Request().Context(), userID, radiusMeters)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby, "Nearby users retrieved successfully")
}

// getUserID extracts the authenticated user ID from the context
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError maps domain errors onto the unified error response
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
