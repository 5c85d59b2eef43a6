package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	EventSessionState        = "session.state"
	EventAvailabilityUpdated = "availability.updated"
	EventPriceUpdated        = "price.updated"
	EventPriceCleared        = "price.cleared"
	EventStepChanged         = "step.changed"
	EventDraftReset          = "draft.reset"
	EventSubmitted           = "booking.submitted"

	// Client to server
	EventFieldSet = "field.set"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorSessionNotFound  = "session_not_found"
	ErrorInternalError    = "internal_error"
)

// ErrorSeverity decides how much of an error is shown to the client
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
)
