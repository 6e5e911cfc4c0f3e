package handler

import (
	"log/slog"
	"net/http"

	"loocate/internal/delivery/http/response"
	"loocate/internal/domain/entity"
	"loocate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// EventHandler accepts viewer-triggered engagement events and turns them
// into deduplicated push notifications.
type EventHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// EngagementEventRequest represents the request body for an engagement event
type EngagementEventRequest struct {
	TargetID string `json:"target_id" validate:"required,uuid"`
}

// EngagementEventResult reports whether this event was the first of its kind
// inside the dedup window. Events dropped by eligibility rules also report
// notified=false so callers cannot probe block relationships.
type EngagementEventResult struct {
	Notified bool `json:"notified"`
}

// ProfileView handles a profile view event against the target user
func (h *EventHandler) ProfileView(c echo.Context) error {
	return h.handleEngagement(c, entity.EventProfileView)
}

// SocialClick handles a social link click event against the target user
func (h *EventHandler) SocialClick(c echo.Context) error {
	return h.handleEngagement(c, entity.EventSocialClick)
}

func (h *EventHandler) handleEngagement(c echo.Context, eventType entity.EventType) error {
	viewerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req EngagementEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid target user ID")
	}

	_, notified, err := h.notificationUC.NotifyIfUnclaimed(c.Request().Context(), targetID, viewerID, eventType)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, EngagementEventResult{Notified: notified}, "Event accepted")
}
