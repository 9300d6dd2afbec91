package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	all := []Status{StatusPendingPayment, StatusPaid, StatusCompleted, StatusCancelled}
	allowed := map[Status]map[Status]bool{
		StatusPendingPayment: {StatusPaid: true},
		StatusPaid:           {StatusCompleted: true, StatusCancelled: true},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPaid.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("paid")
	assert.True(t, ok)
	assert.Equal(t, StatusPaid, s)

	_, ok = ParseStatus("refunded")
	assert.False(t, ok)
}
