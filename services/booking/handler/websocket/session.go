package websocket

import (
	"encoding/json"
	"errors"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	wspkg "github.com/piresc/chauffeur/internal/pkg/websocket"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/form"
)

// SessionHandler streams session events and accepts field edits over a
// WebSocket.
type SessionHandler struct {
	bookingUC booking.BookingUC
	manager   *wspkg.Manager
}

// NewSessionHandler creates a new WebSocket session handler
func NewSessionHandler(bookingUC booking.BookingUC, manager *wspkg.Manager) *SessionHandler {
	return &SessionHandler{
		bookingUC: bookingUC,
		manager:   manager,
	}
}

// HandleSession upgrades GET /sessions/:id/ws. The current state is sent
// first; after that the connection receives every session event.
func (h *SessionHandler) HandleSession(c echo.Context) error {
	sessionID := c.Param("id")
	ctx := c.Request().Context()

	state, err := h.bookingUC.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "Booking session not found")
		}
		logger.ErrorCtx(ctx, "Failed to load session for websocket",
			logger.String("session_id", sessionID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to load booking session")
	}

	return h.manager.HandleConnection(c, sessionID, func(client *wspkg.Client) error {
		logger.Info("Session subscriber connected",
			logger.String("session_id", sessionID),
			logger.Int("subscribers", h.manager.ClientCount(sessionID)))

		if err := h.manager.SendMessage(client, constants.EventSessionState, state); err != nil {
			return err
		}
		return h.readLoop(c, client)
	})
}

func (h *SessionHandler) readLoop(c echo.Context, client *wspkg.Client) error {
	for {
		_, data, err := client.Conn.ReadMessage()
		if err != nil {
			if gorillaws.IsUnexpectedCloseError(err, gorillaws.CloseGoingAway, gorillaws.CloseNormalClosure) {
				logger.Warn("Session subscriber disconnected unexpectedly",
					logger.String("session_id", client.SessionID),
					logger.Err(err))
			}
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
			continue
		}

		if err := h.handleMessage(c, client, msg); err != nil {
			logger.Warn("Failed to answer session subscriber",
				logger.String("session_id", client.SessionID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (h *SessionHandler) handleMessage(c echo.Context, client *wspkg.Client, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(client, constants.EventPong, nil)

	case constants.EventFieldSet:
		var edit models.FieldEdit
		if err := json.Unmarshal(msg.Data, &edit); err != nil || edit.Section == "" || edit.Field == "" {
			return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid field edit")
		}

		state, err := h.bookingUC.SetField(c.Request().Context(), client.SessionID, edit)
		switch {
		case err == nil:
			return h.manager.SendMessage(client, constants.EventSessionState, state)
		case errors.Is(err, booking.ErrSessionNotFound):
			return h.manager.SendErrorMessage(client, constants.ErrorSessionNotFound, "Booking session not found")
		case errors.Is(err, form.ErrInvalidValue), errors.Is(err, booking.ErrSessionClosed):
			return h.manager.SendCategorizedError(client, err, constants.ErrorValidationFailed, constants.ErrorSeverityClient)
		default:
			return h.manager.SendCategorizedError(client, err, constants.ErrorInternalError, constants.ErrorSeverityServer)
		}
	}

	return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event "+msg.Event)
}
