package booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

const (
	FieldCustomerName = "customer_name"
	FieldPhoneNumber  = "phone_number"
	FieldAreaSize     = "area_size"
	FieldCropType     = "crop_type"
	FieldSprayType    = "spray_type"
	FieldSelectedDate = "selected_date"
)

const (
	MsgCustomerNameRequired = "กรุณากรอกชื่อผู้จอง"
	MsgPhoneNumberInvalid   = "เบอร์โทรศัพท์ไม่ถูกต้อง (ต้องมีตัวเลข 9-10 หลัก)"
	MsgAreaSizeInvalid      = "กรุณากรอกขนาดพื้นที่เป็นตัวเลขที่มากกว่า 0 ทศนิยมไม่เกิน 2 ตำแหน่ง"
	MsgCropTypeUnknown      = "ไม่พบชนิดพืชที่เลือก"
	MsgSprayTypeUnknown     = "ไม่พบประเภทการพ่นที่เลือก"
	MsgSelectedDateInvalid  = "วันที่ต้องอยู่ในรูปแบบ YYYY-MM-DD"
)

var phonePattern = regexp.MustCompile(`^[0-9][0-9 .\-]*[0-9]$`)

var phoneSeparators = strings.NewReplacer("-", "", " ", "", ".", "")

// Request is a booking submission as received from a client or the chat bot.
type Request struct {
	CustomerName   string
	PhoneNumber    string
	AreaSize       string
	CropType       string
	SprayType      string
	GPSCoordinates string
	SelectedDate   string
	Notes          string
	LineUserID     string
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

// Has reports whether field failed validation.
func (r ValidationResult) Has(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (r ValidationResult) Error() string {
	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, e.Field+": "+e.Message)
	}
	return "booking validation failed: " + strings.Join(messages, "; ")
}

// Validate runs every check in a fixed order and reports all failures.
func Validate(req Request, table *PriceTable) ValidationResult {
	var errs []FieldError

	if strings.TrimSpace(req.CustomerName) == "" {
		errs = append(errs, FieldError{Field: FieldCustomerName, Message: MsgCustomerNameRequired})
	}

	if !ValidPhone(req.PhoneNumber) {
		errs = append(errs, FieldError{Field: FieldPhoneNumber, Message: MsgPhoneNumberInvalid})
	}

	crop, cropOk := table.Crop(req.CropType)
	spray, sprayOk := table.Spray(req.SprayType)

	area, err := ParseArea(req.AreaSize)
	if err == nil && cropOk && sprayOk {
		if crop.PricePerRai.Add(spray.PricePerRai).Mul(area).Round(MoneyPlaces).GreaterThan(MaxAmount) {
			err = ErrAmountTooLarge
		}
	}
	if err != nil {
		errs = append(errs, FieldError{Field: FieldAreaSize, Message: MsgAreaSizeInvalid})
	}

	if !cropOk {
		errs = append(errs, FieldError{Field: FieldCropType, Message: MsgCropTypeUnknown})
	}

	if !sprayOk {
		errs = append(errs, FieldError{Field: FieldSprayType, Message: MsgSprayTypeUnknown})
	}

	if _, err := ParseDate(req.SelectedDate); err != nil {
		errs = append(errs, FieldError{Field: FieldSelectedDate, Message: MsgSelectedDateInvalid})
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidPhone accepts digits with '-', ' ' or '.' separators and 9 to 10 digits.
func ValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return false
	}

	digits := len(NormalizePhone(phone))
	return digits >= 9 && digits <= 10
}

// NormalizePhone removes separator characters.
func NormalizePhone(phone string) string {
	return phoneSeparators.Replace(strings.TrimSpace(phone))
}

// ParseArea parses a positive area in rai with at most two decimals, up to
// MaxAreaSize.
func ParseArea(area string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(area))
	if err != nil {
		return decimal.Zero, ErrInvalidArea
	}

	if !d.IsPositive() || !d.Equal(d.Round(MoneyPlaces)) || d.GreaterThan(MaxAreaSize) {
		return decimal.Zero, ErrInvalidArea
	}

	return d, nil
}

// ParseDate parses an optional YYYY-MM-DD date. Empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
