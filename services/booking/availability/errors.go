package availability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	httpclient "github.com/piresc/chauffeur/internal/pkg/http"
)

// Messages carried by zero-vehicle results
const (
	MsgMissingCoordinates = "pickup coordinates unavailable, select the pickup address from the suggestions"
	MsgMissingSchedule    = "pickup date and time are required to search for vehicles"
	MsgInvalidSchedule    = "pickup date must be YYYY-MM-DD and time HH:MM"
	MsgBadRequest         = "the vehicle search request was rejected"
	MsgEndpointNotFound   = "vehicle search endpoint not found, check the backend configuration"
	MsgServerError        = "the booking server failed to search for vehicles, try again later"
	MsgNetworkError       = "could not reach the booking server, check the connection"
	MsgUnknownError       = "unexpected error while searching for vehicles"
	MsgNoVehicles         = "no vehicles available for the selected time"
)

// DurationTooShortMessage is returned when a time-based service is probed
// without a long enough duration.
func DurationTooShortMessage(minMinutes int) string {
	return fmt.Sprintf("duration must be at least %d minutes", minMinutes)
}

// DescribeError maps a backend failure to the message shown to the user.
// Validation failures carry the server's own detail.
func DescribeError(err error) string {
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 400:
			if apiErr.Detail != "" {
				return apiErr.Detail
			}
			return MsgBadRequest
		case apiErr.StatusCode == 404:
			return MsgEndpointNotFound
		case apiErr.StatusCode >= 500:
			return MsgServerError
		}
		return MsgUnknownError
	}
	if isNetworkError(err) {
		return MsgNetworkError
	}
	return MsgUnknownError
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
