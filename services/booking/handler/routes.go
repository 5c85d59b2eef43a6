package handler

import (
	"github.com/labstack/echo/v4"
	wspkg "github.com/piresc/chauffeur/internal/pkg/websocket"
	"github.com/piresc/chauffeur/services/booking"
	httpHandler "github.com/piresc/chauffeur/services/booking/handler/http"
	wsHandler "github.com/piresc/chauffeur/services/booking/handler/websocket"
)

// Handler combines all handlers for the booking service
type Handler struct {
	bookingHTTP *httpHandler.BookingHandler
	sessionWS   *wsHandler.SessionHandler
}

// NewHandler creates a new combined handler
func NewHandler(bookingUC booking.BookingUC, wsManager *wspkg.Manager) *Handler {
	return &Handler{
		bookingHTTP: httpHandler.NewBookingHandler(bookingUC),
		sessionWS:   wsHandler.NewSessionHandler(bookingUC, wsManager),
	}
}

// RegisterRoutes registers all HTTP routes. mw applies to the API group
// only; health endpoints are registered separately.
func (h *Handler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	api := e.Group("/api/v1/bookings", mw...)

	api.GET("/places", h.bookingHTTP.SearchPlaces)
	api.GET("/fixed-routes", h.bookingHTTP.SearchFixedRoutes)

	sessions := api.Group("/sessions")
	sessions.POST("", h.bookingHTTP.StartSession)
	sessions.GET("/:id", h.bookingHTTP.GetSession)
	sessions.DELETE("/:id", h.bookingHTTP.CloseSession)
	sessions.PATCH("/:id/fields", h.bookingHTTP.SetField)
	sessions.POST("/:id/places/resolve", h.bookingHTTP.ResolvePlace)
	sessions.POST("/:id/availability", h.bookingHTTP.ProbeAvailability)
	sessions.POST("/:id/availability/extended-hours", h.bookingHTTP.AddExtendedHoursVehicle)
	sessions.POST("/:id/price", h.bookingHTTP.CalculatePrice)
	sessions.POST("/:id/fixed-route", h.bookingHTTP.SelectFixedRoute)
	sessions.POST("/:id/steps/next", h.bookingHTTP.NextStep)
	sessions.POST("/:id/steps/previous", h.bookingHTTP.PreviousStep)
	sessions.POST("/:id/steps/goto", h.bookingHTTP.GoToStep)
	sessions.POST("/:id/submit", h.bookingHTTP.Submit)
	sessions.GET("/:id/ws", h.sessionWS.HandleSession)
}
