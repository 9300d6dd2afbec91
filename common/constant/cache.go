package constant

import "time"

const (
	BookingSubmitLock = "booking:submit_lock:%s:%s:%s:%s:%s"
	LineSessionKey    = "line:session:%s"
)

const (
	BookingSubmitLockDefaultTTL = 1 * time.Minute
	LineSessionDefaultTTL       = 30 * time.Minute
)
