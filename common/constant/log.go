package constant

const (
	LogFieldErr      = "err"
	LogFieldPayload  = "payload"
	LogFieldResponse = "response"
	LogFieldTraceId  = "trace_id"
	LogFieldCode     = "booking_code"
)
