package booking

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or expired session ids
	ErrSessionNotFound = errors.New("booking session not found")
	// ErrSessionClosed is returned when editing a session whose form was closed
	ErrSessionClosed = errors.New("booking session is closed")
	// ErrCannotCalculate is returned when a price is requested without a
	// vehicle or without coordinates for both endpoints
	ErrCannotCalculate = errors.New("a vehicle and both pickup and dropoff coordinates are required")
	// ErrUnknownStep is returned for a step name outside the form
	ErrUnknownStep = errors.New("unknown step")
)
