package receipt

import (
	"bytes"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	out := &ReceiptOutbound{Cfg: viper.New()}
	out.Init()

	pdf, err := out.Render(Data{
		BookingCode:   "BKLQ2X0A01",
		CustomerName:  "สมชาย ใจดี",
		PhoneNumber:   "0812345678",
		AreaSize:      "5.5",
		CropType:      "rice",
		SprayType:     "herbicide",
		Notes:         "พืช: ข้าว\nประเภทการพ่น: ยาฆ่าหญ้า",
		TotalPrice:    "2,200.00",
		DepositAmount: "660.00",
		Balance:       "1,540.00",
		Status:        "pending_payment",
		IssuedAt:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestFoldASCII(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "Somchai", expected: "Somchai"},
		{in: "สมชาย ใจดี", expected: "? ?"},
		{in: "A ข้าว B\nC", expected: "A ? B\nC"},
		{in: "", expected: ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, foldASCII(tc.in))
	}
}
