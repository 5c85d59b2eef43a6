package constants

// NATS Subjects
const (
	SubjectReservationCreated = "booking.reservation.created"
	SubjectAvailabilityProbed = "booking.availability.probed"
	SubjectSubmissionFailed   = "booking.submission.failed"
)
