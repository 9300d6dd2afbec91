package otel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuerySpanName(t *testing.T) {
	assert.Equal(t, "pgx.InsertBooking", querySpanName("-- name: InsertBooking :one\nINSERT INTO bookings"))
	assert.Equal(t, "pgx.query", querySpanName("SELECT 1"))
	assert.Equal(t, "pgx.query", querySpanName("-- name: "))
}
