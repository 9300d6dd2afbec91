package booking

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusPaid           Status = "paid"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

var nextStatuses = map[Status][]Status{
	StatusPendingPayment: {StatusPaid},
	StatusPaid:           {StatusCompleted, StatusCancelled},
}

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPendingPayment, StatusPaid, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// CanTransitionTo reports whether next directly follows s. Status only moves
// forward; terminal statuses have no successor.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range nextStatuses[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
