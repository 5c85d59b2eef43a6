package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	httpclient "github.com/piresc/chauffeur/internal/pkg/http"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/booking"
	"github.com/piresc/chauffeur/services/booking/form"
	"github.com/piresc/chauffeur/services/booking/gateway/routing"
	"github.com/piresc/chauffeur/services/booking/mocks"
	"github.com/piresc/chauffeur/services/booking/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Data    json.RawMessage   `json:"data"`
	Fields  map[string]string `json:"fields"`
}

func serve(t *testing.T, method, target, body string, handler func(echo.Context) error, params ...string) (*httptest.ResponseRecorder, envelope) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) > 0 {
		c.SetParamNames("id")
		c.SetParamValues(params...)
	}

	require.NoError(t, handler(c))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestNewBookingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.bookingUC)
}

func TestBookingHandler_StartSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	mockUC.EXPECT().StartSession(gomock.Any()).
		Return(&models.SessionState{ID: "sess-1", Open: true, ActiveStep: models.StepClient}, nil)

	h := NewBookingHandler(mockUC)
	rec, env := serve(t, http.MethodPost, "/api/v1/bookings/sessions", "", h.StartSession)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var state models.SessionState
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, "sess-1", state.ID)
}

func TestBookingHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{"session not found", booking.ErrSessionNotFound, http.StatusNotFound, "Booking session not found"},
		{"session closed", booking.ErrSessionClosed, http.StatusConflict, "Booking session is closed"},
		{"stale price", form.ErrStalePrice, http.StatusConflict, "The booking changed while the price was calculated, please retry"},
		{"cannot calculate", booking.ErrCannotCalculate, http.StatusBadRequest, booking.ErrCannotCalculate.Error()},
		{"no route", fmt.Errorf("failed to get route: %w", routing.ErrNoRoute), http.StatusUnprocessableEntity, "No driving route between pickup and dropoff"},
		{"upstream", fmt.Errorf("failed to get route: %w", &httpclient.APIError{StatusCode: 503}), http.StatusBadGateway, "Upstream service error"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Failed to calculate price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockBookingUC(ctrl)
			mockUC.EXPECT().CalculatePrice(gomock.Any(), "sess-1").Return(nil, tt.err)

			h := NewBookingHandler(mockUC)
			rec, env := serve(t, http.MethodPost, "/api/v1/bookings/sessions/sess-1/price", "", h.CalculatePrice, "sess-1")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.expectedError, env.Error)
		})
	}
}

func TestBookingHandler_SetField(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*mocks.MockBookingUC)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"section":"pickup","field":"coordinates","value":{"lat":41.379,"lng":2.14}}`,
			mockSetup: func(mockUC *mocks.MockBookingUC) {
				mockUC.EXPECT().SetField(gomock.Any(), "sess-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, edit models.FieldEdit) (*models.SessionState, error) {
						assert.Equal(t, "pickup", edit.Section)
						assert.Equal(t, map[string]interface{}{"lat": 41.379, "lng": 2.14}, edit.Value)
						return &models.SessionState{ID: "sess-1"}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing field",
			body:           `{"section":"pickup"}`,
			mockSetup:      func(mockUC *mocks.MockBookingUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			body:           `{"section":`,
			mockSetup:      func(mockUC *mocks.MockBookingUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid value",
			body: `{"section":"details","field":"passengers","value":"many"}`,
			mockSetup: func(mockUC *mocks.MockBookingUC) {
				mockUC.EXPECT().SetField(gomock.Any(), "sess-1", gomock.Any()).
					Return(nil, fmt.Errorf("details.passengers: %w", form.ErrInvalidValue))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockBookingUC(ctrl)
			tt.mockSetup(mockUC)

			h := NewBookingHandler(mockUC)
			rec, _ := serve(t, http.MethodPatch, "/api/v1/bookings/sessions/sess-1/fields", tt.body, h.SetField, "sess-1")

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestBookingHandler_ResolvePlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	mockUC.EXPECT().ResolvePlace(gomock.Any(), "sess-1", models.TargetDropoff, "p-2").
		Return(&models.SessionState{ID: "sess-1"}, nil)

	h := NewBookingHandler(mockUC)
	rec, _ := serve(t, http.MethodPost, "/api/v1/bookings/sessions/sess-1/places/resolve",
		`{"target":"dropoff","place_id":"p-2"}`, h.ResolvePlace, "sess-1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := serve(t, http.MethodPost, "/api/v1/bookings/sessions/sess-1/places/resolve",
		`{"target":"dropoff"}`, h.ResolvePlace, "sess-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Place ID is required", env.Error)
}

func TestBookingHandler_SearchFixedRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	mockUC.EXPECT().SearchFixedRoutes(gomock.Any(), "airport").
		Return([]models.FixedRoute{{ID: "fr-1", Price: 40}}, nil)

	h := NewBookingHandler(mockUC)
	rec, env := serve(t, http.MethodGet, "/api/v1/bookings/fixed-routes?q=airport", "", h.SearchFixedRoutes)

	assert.Equal(t, http.StatusOK, rec.Code)
	var routes []models.FixedRoute
	require.NoError(t, json.Unmarshal(env.Data, &routes))
	assert.Len(t, routes, 1)

	rec, _ = serve(t, http.MethodGet, "/api/v1/bookings/fixed-routes", "", h.SearchFixedRoutes)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandler_NextStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	gomock.InOrder(
		mockUC.EXPECT().NextStep(gomock.Any(), "sess-1").Return(&models.StepResult{
			ActiveStep: models.StepClient,
			Errors:     map[string]string{"client.email": "Email is required"},
		}, nil),
		mockUC.EXPECT().NextStep(gomock.Any(), "sess-1").Return(&models.StepResult{
			Advanced:   true,
			ActiveStep: models.StepService,
		}, nil),
	)

	h := NewBookingHandler(mockUC)

	rec, env := serve(t, http.MethodPost, "/api/v1/bookings/sessions/sess-1/steps/next", "", h.NextStep, "sess-1")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var blocked models.StepResult
	require.NoError(t, json.Unmarshal(env.Data, &blocked))
	assert.Equal(t, "Email is required", blocked.Errors["client.email"])

	rec, env = serve(t, http.MethodPost, "/api/v1/bookings/sessions/sess-1/steps/next", "", h.NextStep, "sess-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestBookingHandler_GoToStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockBookingUC(ctrl)
	mockUC.EXPECT().GoToStep(gomock.Any(), "sess-1", models.Step("summary")).Return(nil, booking.ErrUnknownStep)

	h := NewBookingHandler(mockUC)
	rec, _ := serve(t, http.MethodPost, "/api/v1/bookings/sessions/sess-1/steps/goto",
		`{"step":"summary"}`, h.GoToStep, "sess-1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandler_Submit(t *testing.T) {
	tests := []struct {
		name           string
		result         *models.SubmissionResult
		err            error
		expectedStatus int
		check          func(t *testing.T, env envelope)
	}{
		{
			name:           "Success",
			result:         &models.SubmissionResult{ReservationCode: "RSV-0041", Message: "Reservation RSV-0041 created"},
			expectedStatus: http.StatusCreated,
			check: func(t *testing.T, env envelope) {
				assert.Equal(t, "Reservation RSV-0041 created", env.Message)
			},
		},
		{
			name: "Validation failure",
			err: &submission.ValidationError{
				Step:   models.StepPayment,
				Errors: map[string]string{"payment.amount": "Amount is required"},
			},
			expectedStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, env envelope) {
				assert.Equal(t, "Amount is required", env.Fields["payment.amount"])
			},
		},
		{
			name:           "Backend rejected",
			err:            &submission.SubmissionError{Message: "vehicle v-1 is no longer available"},
			expectedStatus: http.StatusBadGateway,
			check: func(t *testing.T, env envelope) {
				assert.Equal(t, "vehicle v-1 is no longer available", env.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockBookingUC(ctrl)
			mockUC.EXPECT().Submit(gomock.Any(), "sess-1").Return(tt.result, tt.err)

			h := NewBookingHandler(mockUC)
			rec, env := serve(t, http.MethodPost, "/api/v1/bookings/sessions/sess-1/submit", "", h.Submit, "sess-1")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.check(t, env)
		})
	}
}
