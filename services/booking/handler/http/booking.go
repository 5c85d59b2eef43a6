package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	httpclient "github.com/piresc/chauffeur/internal/pkg/http"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/middleware"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/form"
	"github.com/piresc/chauffeur/services/booking/gateway/routing"
	"github.com/piresc/chauffeur/services/booking/submission"
)

// BookingHandler exposes booking sessions over HTTP
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

type resolvePlaceRequest struct {
	Target  models.StopTarget `json:"target"`
	PlaceID string            `json:"place_id"`
}

type goToStepRequest struct {
	Step models.Step `json:"step"`
}

// StartSession opens a new booking form
func (h *BookingHandler) StartSession(c echo.Context) error {
	state, err := h.bookingUC.StartSession(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, "Failed to start booking session")
	}
	middleware.SetSessionID(c, state.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Booking session started", state)
}

// GetSession returns the session state
func (h *BookingHandler) GetSession(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	state, err := h.bookingUC.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return h.handleError(c, err, "Failed to get booking session")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking session retrieved", state)
}

// CloseSession discards the session
func (h *BookingHandler) CloseSession(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	if err := h.bookingUC.CloseSession(c.Request().Context(), sessionID); err != nil {
		return h.handleError(c, err, "Failed to close booking session")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking session closed", nil)
}

// SetField applies one form edit
func (h *BookingHandler) SetField(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	var edit models.FieldEdit
	if err := c.Bind(&edit); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if edit.Section == "" || edit.Field == "" {
		return utils.BadRequestResponse(c, "Section and field are required")
	}

	state, err := h.bookingUC.SetField(c.Request().Context(), sessionID, edit)
	if err != nil {
		return h.handleError(c, err, "Failed to update field")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Field updated", state)
}

// SearchPlaces returns address suggestions for ?q=
func (h *BookingHandler) SearchPlaces(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))

	places, err := h.bookingUC.SearchPlaces(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err, "Failed to search places")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Places retrieved", places)
}

// ResolvePlace writes a resolved place into pickup or dropoff
func (h *BookingHandler) ResolvePlace(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	var req resolvePlaceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.PlaceID == "" {
		return utils.BadRequestResponse(c, "Place ID is required")
	}

	state, err := h.bookingUC.ResolvePlace(c.Request().Context(), sessionID, req.Target, req.PlaceID)
	if err != nil {
		return h.handleError(c, err, "Failed to resolve place")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Place resolved", state)
}

// ProbeAvailability searches vehicles for the current draft right away
func (h *BookingHandler) ProbeAvailability(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	result, err := h.bookingUC.ProbeAvailability(c.Request().Context(), sessionID)
	if err != nil {
		return h.handleError(c, err, "Failed to check availability")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Availability checked", result)
}

// AddExtendedHoursVehicle offers a vehicle outside its schedule
func (h *BookingHandler) AddExtendedHoursVehicle(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	var vehicle models.Ref
	if err := c.Bind(&vehicle); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	result, err := h.bookingUC.AddExtendedHoursVehicle(c.Request().Context(), sessionID, vehicle)
	if err != nil {
		return h.handleError(c, err, "Failed to add vehicle")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle added", result)
}

// CalculatePrice prices the current draft
func (h *BookingHandler) CalculatePrice(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	quote, err := h.bookingUC.CalculatePrice(c.Request().Context(), sessionID)
	if err != nil {
		return h.handleError(c, err, "Failed to calculate price")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Price calculated", quote)
}

// SearchFixedRoutes looks up fixed routes for ?q=
func (h *BookingHandler) SearchFixedRoutes(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return utils.BadRequestResponse(c, "Query is required")
	}

	routes, err := h.bookingUC.SearchFixedRoutes(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err, "Failed to search fixed routes")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fixed routes retrieved", routes)
}

// SelectFixedRoute applies a fixed route to the draft
func (h *BookingHandler) SelectFixedRoute(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	var route models.FixedRoute
	if err := c.Bind(&route); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if route.ID == "" {
		return utils.BadRequestResponse(c, "Route ID is required")
	}

	state, err := h.bookingUC.SelectFixedRoute(c.Request().Context(), sessionID, route)
	if err != nil {
		return h.handleError(c, err, "Failed to select fixed route")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fixed route selected", state)
}

// NextStep validates the active step and advances
func (h *BookingHandler) NextStep(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	res, err := h.bookingUC.NextStep(c.Request().Context(), sessionID)
	if err != nil {
		return h.handleError(c, err, "Failed to change step")
	}
	return stepResponse(c, res)
}

// PreviousStep goes back one step
func (h *BookingHandler) PreviousStep(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	res, err := h.bookingUC.PreviousStep(c.Request().Context(), sessionID)
	if err != nil {
		return h.handleError(c, err, "Failed to change step")
	}
	return stepResponse(c, res)
}

// GoToStep jumps to a step
func (h *BookingHandler) GoToStep(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	var req goToStepRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	res, err := h.bookingUC.GoToStep(c.Request().Context(), sessionID, req.Step)
	if err != nil {
		return h.handleError(c, err, "Failed to change step")
	}
	return stepResponse(c, res)
}

// Submit creates the reservation
func (h *BookingHandler) Submit(c echo.Context) error {
	sessionID := c.Param("id")
	middleware.SetSessionID(c, sessionID)

	result, err := h.bookingUC.Submit(c.Request().Context(), sessionID)
	if err != nil {
		return h.handleError(c, err, "Failed to submit booking")
	}
	middleware.AddAttribute(c, "booking.reservation_code", result.ReservationCode)
	return utils.SuccessResponse(c, http.StatusCreated, result.Message, result)
}

// stepResponse answers 200 when the step is clean and 422 with the field
// messages when navigation was blocked.
func stepResponse(c echo.Context, res *models.StepResult) error {
	if len(res.Errors) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, utils.Response{
			Success: false,
			Error:   "Step has validation errors",
			Data:    res,
		})
	}
	return utils.SuccessResponse(c, http.StatusOK, "Step changed", res)
}

// handleError maps use case errors to the response envelope
func (h *BookingHandler) handleError(c echo.Context, err error, fallback string) error {
	var (
		validationErr *submission.ValidationError
		submissionErr *submission.SubmissionError
		apiErr        *httpclient.APIError
	)

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		return utils.NotFoundResponse(c, "Booking session not found")
	case errors.Is(err, booking.ErrSessionClosed):
		return utils.ConflictResponse(c, "Booking session is closed")
	case errors.Is(err, form.ErrStalePrice):
		return utils.ConflictResponse(c, "The booking changed while the price was calculated, please retry")
	case errors.Is(err, booking.ErrCannotCalculate),
		errors.Is(err, booking.ErrUnknownStep),
		errors.Is(err, form.ErrInvalidValue):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, routing.ErrNoRoute):
		return utils.ErrorResponseHandler(c, http.StatusUnprocessableEntity, "No driving route between pickup and dropoff")
	case errors.As(err, &validationErr):
		return utils.ValidationErrorResponse(c, "Booking has validation errors", validationErr.Errors)
	case errors.As(err, &submissionErr):
		middleware.NoticeError(c, err)
		return utils.BadGatewayResponse(c, submissionErr.Message)
	case errors.As(err, &apiErr):
		middleware.NoticeError(c, err)
		logger.ErrorCtx(c.Request().Context(), fallback, logger.Err(err))
		return utils.BadGatewayResponse(c, "")
	}

	middleware.NoticeError(c, err)
	logger.ErrorCtx(c.Request().Context(), fallback, logger.Err(err))
	return utils.InternalServerErrorResponse(c, fallback)
}
