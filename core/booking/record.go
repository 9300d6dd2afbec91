package booking

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	notesCropLabel  = "พืช: "
	notesSprayLabel = "ประเภทการพ่น: "
	notesFreeLabel  = "หมายเหตุ: "
)

// maxSequence is the largest per-millisecond sequence, two base-36 digits.
const maxSequence = 36*36 - 1

// Record is a priced booking ready to be persisted.
type Record struct {
	BookingCode    string
	CustomerName   string
	PhoneNumber    string
	AreaSize       decimal.Decimal
	CropType       string
	SprayType      string
	GPSCoordinates string
	ScheduledDate  *time.Time
	Notes          string
	TotalPrice     decimal.Decimal
	DepositAmount  decimal.Decimal
	Status         Status
	LineUserID     string
}

// CodeGenerator hands out booking codes made of a prefix, the base-36
// millisecond clock and a base-36 sequence. Codes from one generator never
// repeat, even when the clock stalls or steps back.
type CodeGenerator struct {
	prefix string
	now    func() time.Time

	mu     sync.Mutex
	lastMs int64
	seq    int64
}

func NewCodeGenerator(prefix string, now func() time.Time) *CodeGenerator {
	if now == nil {
		now = time.Now
	}
	return &CodeGenerator{prefix: prefix, now: now}
}

func (g *CodeGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms > g.lastMs {
		g.lastMs = ms
		g.seq = 0
	} else {
		g.seq++
		if g.seq > maxSequence {
			g.lastMs++
			g.seq = 0
		}
	}

	seq := strconv.FormatInt(g.seq, 36)
	if len(seq) < 2 {
		seq = "0" + seq
	}

	return g.prefix + strings.ToUpper(strconv.FormatInt(g.lastMs, 36)+seq)
}

// ComposeNotes puts the crop name, spray name and optional free text on their
// own lines. An empty note adds no line.
func ComposeNotes(cropName, sprayName, note string) string {
	lines := []string{notesCropLabel + cropName, notesSprayLabel + sprayName}
	if note = strings.TrimSpace(note); note != "" {
		lines = append(lines, notesFreeLabel+note)
	}
	return strings.Join(lines, "\n")
}

// BuildRecord assembles a validated, sanitized request and its price into a
// record with a fresh booking code and status pending_payment.
func BuildRecord(req Request, table *PriceTable, price Price, codes *CodeGenerator) Record {
	area, _ := ParseArea(req.AreaSize)
	scheduled, _ := ParseDate(req.SelectedDate)

	cropName := req.CropType
	if crop, ok := table.Crop(req.CropType); ok {
		cropName = crop.Name
	}

	sprayName := req.SprayType
	if spray, ok := table.Spray(req.SprayType); ok {
		sprayName = spray.Name
	}

	return Record{
		BookingCode:    codes.Next(),
		CustomerName:   req.CustomerName,
		PhoneNumber:    NormalizePhone(req.PhoneNumber),
		AreaSize:       area,
		CropType:       req.CropType,
		SprayType:      req.SprayType,
		GPSCoordinates: req.GPSCoordinates,
		ScheduledDate:  scheduled,
		Notes:          ComposeNotes(cropName, sprayName, req.Notes),
		TotalPrice:     price.TotalPrice,
		DepositAmount:  price.DepositAmount,
		Status:         StatusPendingPayment,
		LineUserID:     req.LineUserID,
	}
}

// SanitizeRequest cleans the free-text fields of req.
func SanitizeRequest(req Request) Request {
	req.CustomerName = Sanitize(req.CustomerName)
	req.GPSCoordinates = Sanitize(req.GPSCoordinates)
	req.Notes = Sanitize(req.Notes)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.AreaSize = strings.TrimSpace(req.AreaSize)
	req.CropType = strings.TrimSpace(req.CropType)
	req.SprayType = strings.TrimSpace(req.SprayType)
	req.SelectedDate = strings.TrimSpace(req.SelectedDate)
	return req
}

// Prepare sanitizes, validates, prices and builds a booking. When validation
// fails the returned result carries every failing field and pricing is not run.
func Prepare(req Request, table *PriceTable, depositRate decimal.Decimal, codes *CodeGenerator) (Record, ValidationResult, error) {
	req = SanitizeRequest(req)

	result := Validate(req, table)
	if !result.Valid {
		return Record{}, result, nil
	}

	area, _ := ParseArea(req.AreaSize)
	price, err := CalculatePrice(table, req.CropType, req.SprayType, area, depositRate)
	if err != nil {
		return Record{}, result, err
	}

	return BuildRecord(req, table, price, codes), result, nil
}
