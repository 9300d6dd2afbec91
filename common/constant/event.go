package constant

const (
	EventStreamName = "agri_drone_event_stream"
)

const (
	AllWildcard     = "events.>"
	BookingWildcard = "events.booking.>"

	SubjectBookingCreated       = "events.booking.created"
	SubjectBookingPaid          = "events.booking.paid"
	SubjectBookingStatusChanged = "events.booking.status_changed"
	SubjectBookingAssigned      = "events.booking.assigned"
)
