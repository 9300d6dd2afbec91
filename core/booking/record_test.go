package booking

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	}
}

func TestCodeGeneratorSameMillisecond(t *testing.T) {
	codes := NewCodeGenerator("BK", fixedClock())

	first := codes.Next()
	second := codes.Next()

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "BK"))
	assert.Len(t, first, len(second))
}

func TestCodeGeneratorSequenceOverflow(t *testing.T) {
	codes := NewCodeGenerator("BK", fixedClock())

	seen := make(map[string]struct{})
	for i := 0; i < 3*(maxSequence+1); i++ {
		code := codes.Next()
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %s at %d", code, i)
		seen[code] = struct{}{}
	}
}

func TestCodeGeneratorClockStepsBack(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	codes := NewCodeGenerator("BK", func() time.Time { return now })

	first := codes.Next()
	now = now.Add(-time.Second)
	second := codes.Next()

	assert.NotEqual(t, first, second)
}

func TestCodeGeneratorConcurrent(t *testing.T) {
	codes := NewCodeGenerator("BK", fixedClock())

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				code := codes.Next()
				mu.Lock()
				seen[code] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestComposeNotes(t *testing.T) {
	assert.Equal(t, "พืช: ข้าว\nประเภทการพ่น: ยาฆ่าหญ้า", ComposeNotes("ข้าว", "ยาฆ่าหญ้า", ""))
	assert.Equal(t, "พืช: ข้าว\nประเภทการพ่น: ยาฆ่าหญ้า", ComposeNotes("ข้าว", "ยาฆ่าหญ้า", "   "))
	assert.Equal(t, "พืช: ข้าว\nประเภทการพ่น: ยาฆ่าหญ้า\nหมายเหตุ: มาเช้า", ComposeNotes("ข้าว", "ยาฆ่าหญ้า", "มาเช้า"))
	assert.NotContains(t, ComposeNotes("a", "b", ""), "หมายเหตุ:")
}

func TestPrepare(t *testing.T) {
	table := testPriceTable()
	rate := decimal.RequireFromString("0.30")
	codes := NewCodeGenerator("BK", fixedClock())

	req := Request{
		CustomerName:   "  สมชาย <b>ใจดี</b> ",
		PhoneNumber:    "081-234-5678",
		AreaSize:       " 5.5 ",
		CropType:       "rice",
		SprayType:      "herbicide",
		GPSCoordinates: "13.7563,100.5018",
		SelectedDate:   "2026-11-01",
		Notes:          "",
		LineUserID:     "U123",
	}

	record, result, err := Prepare(req, table, rate, codes)
	require.NoError(t, err)
	require.True(t, result.Valid)

	assert.NotEmpty(t, record.BookingCode)
	assert.Equal(t, "สมชาย ใจดี", record.CustomerName)
	assert.Equal(t, "0812345678", record.PhoneNumber)
	assert.True(t, decimal.RequireFromString("5.5").Equal(record.AreaSize))
	assert.True(t, decimal.NewFromInt(2200).Equal(record.TotalPrice))
	assert.True(t, decimal.NewFromInt(660).Equal(record.DepositAmount))
	assert.Equal(t, StatusPendingPayment, record.Status)
	assert.Equal(t, "13.7563,100.5018", record.GPSCoordinates)
	require.NotNil(t, record.ScheduledDate)
	assert.Equal(t, "2026-11-01", record.ScheduledDate.Format(DateLayout))
	assert.Equal(t, "พืช: ข้าว\nประเภทการพ่น: ยาฆ่าหญ้า", record.Notes)
	assert.Equal(t, "U123", record.LineUserID)
}

func TestPrepareRejectsBeforePricing(t *testing.T) {
	table := testPriceTable()
	codes := NewCodeGenerator("BK", fixedClock())

	record, result, err := Prepare(Request{AreaSize: "abc", CropType: "unknown_key"}, table, decimal.RequireFromString("0.3"), codes)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.True(t, result.Has(FieldAreaSize))
	assert.True(t, result.Has(FieldCropType))
	assert.Empty(t, record.BookingCode)
}

func TestPrepareNearSimultaneous(t *testing.T) {
	table := testPriceTable()
	codes := NewCodeGenerator("BK", fixedClock())
	rate := decimal.RequireFromString("0.3")

	a, _, err := Prepare(validRequest(), table, rate, codes)
	require.NoError(t, err)
	b, _, err := Prepare(validRequest(), table, rate, codes)
	require.NoError(t, err)

	assert.NotEqual(t, a.BookingCode, b.BookingCode)
	assert.Equal(t, a.Notes, b.Notes)
}
