package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPriceTable() *PriceTable {
	return NewPriceTable(
		[]PriceItem{
			{Key: "rice", Name: "ข้าว", PricePerRai: decimal.NewFromInt(300)},
			{Key: "corn", Name: "ข้าวโพด", PricePerRai: decimal.NewFromInt(350)},
			{Key: "durian", Name: "ทุเรียน", PricePerRai: decimal.RequireFromString("512.55")},
		},
		[]PriceItem{
			{Key: "herbicide", Name: "ยาฆ่าหญ้า", PricePerRai: decimal.NewFromInt(100)},
			{Key: "fertilizer", Name: "ปุ๋ยน้ำ", PricePerRai: decimal.RequireFromString("0.005")},
		},
	)
}

func TestCalculatePrice(t *testing.T) {
	table := testPriceTable()
	rate := decimal.RequireFromString("0.30")

	tests := []struct {
		name            string
		crop            string
		spray           string
		area            string
		expectedTotal   string
		expectedDeposit string
		expectedErr     error
	}{
		{
			name:            "rice with herbicide",
			crop:            "rice",
			spray:           "herbicide",
			area:            "5.5",
			expectedTotal:   "2200",
			expectedDeposit: "660",
		},
		{
			name:            "fractional rounding half up",
			crop:            "durian",
			spray:           "herbicide",
			area:            "1.1",
			expectedTotal:   "673.81",
			expectedDeposit: "202.14",
		},
		{
			name:            "rounding applied once at the end",
			crop:            "rice",
			spray:           "fertilizer",
			area:            "1",
			expectedTotal:   "300.01",
			expectedDeposit: "90",
		},
		{
			name:        "unknown crop rejected",
			crop:        "unknown_key",
			spray:       "herbicide",
			area:        "1",
			expectedErr: ErrUnknownCropType,
		},
		{
			name:        "unknown spray rejected",
			crop:        "rice",
			spray:       "unknown_key",
			area:        "1",
			expectedErr: ErrUnknownSprayType,
		},
		{
			name:        "zero area",
			crop:        "rice",
			spray:       "herbicide",
			area:        "0",
			expectedErr: ErrInvalidArea,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			price, err := CalculatePrice(table, tc.crop, tc.spray, decimal.RequireFromString(tc.area), rate)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expectedTotal).Equal(price.TotalPrice), "total %s", price.TotalPrice)
			assert.True(t, decimal.RequireFromString(tc.expectedDeposit).Equal(price.DepositAmount), "deposit %s", price.DepositAmount)
			assert.True(t, price.TotalPrice.Sub(price.DepositAmount).Equal(price.Balance()))
		})
	}
}

func TestCalculatePriceProperty(t *testing.T) {
	table := testPriceTable()
	rate := decimal.RequireFromString("0.30")

	for _, area := range []string{"0.01", "0.5", "1", "2.25", "7.333", "10", "123.456"} {
		a := decimal.RequireFromString(area)
		price, err := CalculatePrice(table, "corn", "herbicide", a, rate)
		require.NoError(t, err)

		total := decimal.NewFromInt(450).Mul(a).Round(MoneyPlaces)
		assert.True(t, total.Equal(price.TotalPrice), "area %s", area)
		assert.True(t, total.Mul(rate).Round(MoneyPlaces).Equal(price.DepositAmount), "area %s", area)
	}
}

func TestCalculatePriceIsDeterministic(t *testing.T) {
	table := testPriceTable()
	rate := decimal.RequireFromString("0.30")
	area := decimal.RequireFromString("3.7")

	first, err := CalculatePrice(table, "durian", "fertilizer", area, rate)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := CalculatePrice(table, "durian", "fertilizer", area, rate)
		require.NoError(t, err)
		assert.True(t, first.TotalPrice.Equal(again.TotalPrice))
		assert.True(t, first.DepositAmount.Equal(again.DepositAmount))
	}
}

func TestPriceTable(t *testing.T) {
	table := NewPriceTable(
		[]PriceItem{
			{Key: "rice", Name: "ข้าว", PricePerRai: decimal.NewFromInt(300)},
			{Key: "corn", Name: "ข้าวโพด", PricePerRai: decimal.NewFromInt(350)},
			{Key: "rice", Name: "ข้าวนาปรัง", PricePerRai: decimal.NewFromInt(320)},
		},
		nil,
	)

	crops := table.Crops()
	require.Len(t, crops, 2)
	assert.Equal(t, "rice", crops[0].Key)
	assert.Equal(t, "ข้าวนาปรัง", crops[0].Name)
	assert.Equal(t, "corn", crops[1].Key)

	crops[0].Name = "changed"
	rice, ok := table.Crop("rice")
	require.True(t, ok)
	assert.Equal(t, "ข้าวนาปรัง", rice.Name)

	_, ok = table.Spray("herbicide")
	assert.False(t, ok)

	var empty *PriceTable
	_, ok = empty.Crop("rice")
	assert.False(t, ok)
	assert.Nil(t, empty.Sprays())
}
