package handler

import (
	"log/slog"
	"time"

	"loocate/internal/infra/presence"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	presencePongWait   = 60 * time.Second
	presencePingPeriod = 45 * time.Second
)

// PresenceHandlerParams holds dependencies for PresenceHandler, injected by Fx.
type PresenceHandlerParams struct {
	fx.In

	Registry *presence.Registry
	Logger   *slog.Logger
}

// PresenceHandler upgrades authenticated clients to a websocket and keeps the
// presence registry in sync with their connection lifetime.
type PresenceHandler struct {
	registry *presence.Registry
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewPresenceHandler is the constructor for PresenceHandler
func NewPresenceHandler(params PresenceHandlerParams) *PresenceHandler {
	return &PresenceHandler{
		registry: params.Registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: params.Logger,
	}
}

// Connect upgrades the request to a websocket. The user counts as online
// until the connection closes; pings keep half-dead connections from
// lingering in the registry.
func (h *PresenceHandler) Connect(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to upgrade websocket")
	}

	h.registry.Add(userID, conn)
	h.logger.Debug("presence connection opened", slog.String("user_id", userID.String()))

	go h.keepAlive(conn)

	defer func() {
		h.registry.Remove(userID, conn)
		conn.Close()
		h.logger.Debug("presence connection closed", slog.String("user_id", userID.String()))
	}()

	if err := conn.SetReadDeadline(time.Now().Add(presencePongWait)); err != nil {
		return errors.Wrap(err, "failed to set read deadline")
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(presencePongWait))
	})

	// Drain client frames; the socket only carries liveness.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (h *PresenceHandler) keepAlive(conn *websocket.Conn) {
	ticker := time.NewTicker(presencePingPeriod)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
			return
		}
	}
}
