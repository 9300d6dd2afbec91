package receipt

import (
	"bytes"
	"fmt"
	"github.com/phpdave11/gofpdf"
	"github.com/spf13/viper"
	"strings"
	"time"
	"unicode"
)

const unicodeFont = "receipt"

// Data is what a receipt shows. Amounts are preformatted.
type Data struct {
	BookingCode   string
	CustomerName  string
	PhoneNumber   string
	AreaSize      string
	CropType      string
	SprayType     string
	ScheduledDate string
	Notes         string
	TotalPrice    string
	DepositAmount string
	Balance       string
	Status        string
	IssuedAt      time.Time
}

// ReceiptOutbound renders booking receipts. With receipt.font_path set to a
// TTF that covers Thai the text is printed as-is, otherwise it is folded to
// what the core Helvetica font can show.
type ReceiptOutbound struct {
	Cfg *viper.Viper

	fontPath string
}

func (out *ReceiptOutbound) Init() {
	out.fontPath = out.Cfg.GetString("receipt.font_path")
}

func (out *ReceiptOutbound) Render(d Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt "+d.BookingCode, true)
	pdf.SetCreationDate(d.IssuedAt)

	family := "Helvetica"
	text := foldASCII
	if out.fontPath != "" {
		pdf.AddUTF8Font(unicodeFont, "", out.fontPath)
		pdf.AddUTF8Font(unicodeFont, "B", out.fontPath)
		family = unicodeFont
		text = func(s string) string { return s }
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont(family, "", 12)
	rows := [][2]string{
		{"Booking code", d.BookingCode},
		{"Issued", d.IssuedAt.Format("2006-01-02 15:04")},
		{"Customer", d.CustomerName},
		{"Phone", d.PhoneNumber},
		{"Area (rai)", d.AreaSize},
		{"Crop", d.CropType},
		{"Spray", d.SprayType},
		{"Scheduled", orDash(d.ScheduledDate)},
		{"Status", d.Status},
	}
	for _, row := range rows {
		pdf.Cell(0, 7, fmt.Sprintf("%-14s: %s", row[0], text(orDash(row[1]))))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont(family, "B", 12)
	pdf.Cell(0, 7, "Total   : "+d.TotalPrice+" THB")
	pdf.Ln(7)
	pdf.Cell(0, 7, "Deposit : "+d.DepositAmount+" THB")
	pdf.Ln(7)
	pdf.Cell(0, 7, "Balance : "+d.Balance+" THB")
	pdf.Ln(10)

	if d.Notes != "" {
		pdf.SetFont(family, "", 10)
		pdf.MultiCell(0, 6, text(d.Notes), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}

	return buf.Bytes(), nil
}

// foldASCII keeps printable ASCII and newlines. Runs of other runes become a
// single '?'.
func foldASCII(s string) string {
	var sb strings.Builder
	folded := false
	for _, r := range s {
		if r == '\n' || (r < unicode.MaxASCII && unicode.IsPrint(r)) {
			sb.WriteRune(r)
			folded = false
			continue
		}
		if !folded {
			sb.WriteByte('?')
			folded = true
		}
	}
	return sb.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
