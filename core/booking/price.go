package booking

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places of the currency minor unit.
const MoneyPlaces = 2

// MaxAreaSize and MaxAmount bound what the NUMERIC(12,2) columns can hold.
var (
	MaxAreaSize = decimal.NewFromInt(100000)
	MaxAmount   = decimal.RequireFromString("9999999999.99")
)

var (
	ErrUnknownCropType  = errors.New("unknown crop type")
	ErrUnknownSprayType = errors.New("unknown spray type")
	ErrInvalidArea      = errors.New("area size must be positive with at most two decimals")
	ErrAmountTooLarge   = errors.New("total price too large")
)

// PriceItem is one selectable crop or spray with its price per rai.
type PriceItem struct {
	Key         string
	Name        string
	PricePerRai decimal.Decimal
}

// PriceTable is an immutable snapshot of crop and spray prices. It is safe for
// concurrent reads; a refresh builds a new table instead of mutating one.
type PriceTable struct {
	crops  []PriceItem
	sprays []PriceItem

	cropByKey  map[string]PriceItem
	sprayByKey map[string]PriceItem
}

// NewPriceTable copies the given items. Later duplicates of a key replace
// earlier ones, keeping the position of the first.
func NewPriceTable(crops, sprays []PriceItem) *PriceTable {
	t := &PriceTable{}
	t.crops, t.cropByKey = indexItems(crops)
	t.sprays, t.sprayByKey = indexItems(sprays)
	return t
}

func indexItems(items []PriceItem) ([]PriceItem, map[string]PriceItem) {
	ordered := make([]PriceItem, 0, len(items))
	byKey := make(map[string]PriceItem, len(items))
	position := make(map[string]int, len(items))

	for _, item := range items {
		if i, ok := position[item.Key]; ok {
			ordered[i] = item
		} else {
			position[item.Key] = len(ordered)
			ordered = append(ordered, item)
		}
		byKey[item.Key] = item
	}

	return ordered, byKey
}

func (t *PriceTable) Crop(key string) (PriceItem, bool) {
	if t == nil {
		return PriceItem{}, false
	}
	item, ok := t.cropByKey[key]
	return item, ok
}

func (t *PriceTable) Spray(key string) (PriceItem, bool) {
	if t == nil {
		return PriceItem{}, false
	}
	item, ok := t.sprayByKey[key]
	return item, ok
}

// Crops returns the crops in insertion order.
func (t *PriceTable) Crops() []PriceItem {
	if t == nil {
		return nil
	}
	return append([]PriceItem(nil), t.crops...)
}

// Sprays returns the spray types in insertion order.
func (t *PriceTable) Sprays() []PriceItem {
	if t == nil {
		return nil
	}
	return append([]PriceItem(nil), t.sprays...)
}

// Price is the outcome of pricing one booking.
type Price struct {
	CropUnitPrice  decimal.Decimal
	SprayUnitPrice decimal.Decimal
	TotalPrice     decimal.Decimal
	DepositAmount  decimal.Decimal
}

// Balance is what remains to be paid after the deposit.
func (p Price) Balance() decimal.Decimal {
	return p.TotalPrice.Sub(p.DepositAmount)
}

// CalculatePrice computes (crop + spray) * area rounded half-up to the minor
// unit, and the deposit as the rounded share of that total. Unknown keys are
// an error, never priced at zero.
func CalculatePrice(table *PriceTable, cropType, sprayType string, area, depositRate decimal.Decimal) (Price, error) {
	if !area.IsPositive() {
		return Price{}, ErrInvalidArea
	}

	crop, ok := table.Crop(cropType)
	if !ok {
		return Price{}, ErrUnknownCropType
	}

	spray, ok := table.Spray(sprayType)
	if !ok {
		return Price{}, ErrUnknownSprayType
	}

	total := crop.PricePerRai.Add(spray.PricePerRai).Mul(area).Round(MoneyPlaces)
	if total.GreaterThan(MaxAmount) {
		return Price{}, ErrAmountTooLarge
	}
	deposit := total.Mul(depositRate).Round(MoneyPlaces)

	return Price{
		CropUnitPrice:  crop.PricePerRai,
		SprayUnitPrice: spray.PricePerRai,
		TotalPrice:     total,
		DepositAmount:  deposit,
	}, nil
}
