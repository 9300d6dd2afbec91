package vars

import (
	"agri-drone/core/booking"
	"sync/atomic"
)

// priceTable holds the current price table snapshot. Readers never lock; a
// refresh swaps in a whole new table.
var priceTable atomic.Pointer[booking.PriceTable]

// GetPriceTable returns the current snapshot, or nil before the first load.
func GetPriceTable() *booking.PriceTable {
	return priceTable.Load()
}

// SetPriceTable replaces the snapshot. Pass nil to clear it.
func SetPriceTable(table *booking.PriceTable) {
	priceTable.Store(table)
}
