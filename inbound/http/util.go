package http

import (
	"agri-drone/common"
	"agri-drone/common/errs"
	"agri-drone/core/booking"
	"agri-drone/model"
	"agri-drone/outbound/sqlgen"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"net/http"
	"strconv"
	"time"
)

const timestampLayout = "2006-01-02T15:04:05"

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var message string
	var data any
	if httpErr, ok := err.(*errs.HttpError); ok {
		message = httpErr.Message
		data = httpErr.Data
		w.WriteHeader(httpErr.Code)
	} else if validationErr, ok := err.(validator.ValidationErrors); ok {
		message = "Validation failed"
		w.WriteHeader(http.StatusBadRequest)

		validationErrors := make(map[string]string)
		for _, fieldErr := range validationErr {
			fieldName := fieldErr.Field()
			validationErrors[fieldName] = fieldErr.Tag()
		}

		data = validationErrors
	} else if result, ok := err.(booking.ValidationResult); ok {
		message = "Validation failed"
		data = result
		w.WriteHeader(http.StatusBadRequest)
	} else {
		message = "Internal Server Error"
		w.WriteHeader(500)
	}

	errorResponse := model.ErrorResponse{Error: message, Data: data}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// pathID parses a positive integer path value.
func pathID(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 32)
	if err != nil || id <= 0 {
		return 0, errs.ErrInvalidRequest
	}
	return int32(id), nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(booking.MoneyPlaces)
}

// formatBaht groups thousands the way the printer's locale does.
func formatBaht(p *message.Printer, d decimal.Decimal) string {
	return p.Sprintf("%.2f", d.Round(booking.MoneyPlaces).InexactFloat64())
}

func toBookingResponse(b sqlgen.Booking) model.BookingResponse {
	resp := model.BookingResponse{
		Id:             b.ID,
		BookingCode:    b.BookingCode,
		CustomerName:   b.CustomerName,
		PhoneNumber:    b.Phone,
		AreaSize:       common.DecimalFromNumeric(b.AreaSize).String(),
		CropType:       b.CropType,
		SprayType:      b.SprayType,
		GPSCoordinates: b.GpsCoordinates,
		Notes:          b.Notes,
		TotalPrice:     money(common.DecimalFromNumeric(b.TotalPrice)),
		DepositAmount:  money(common.DecimalFromNumeric(b.DepositAmount)),
		Status:         b.Status,
		LineUserID:     b.LineUserID.String,
		HasSlip:        b.SlipPath.Valid,
	}

	if b.ScheduledDate.Valid {
		resp.ScheduledDate = b.ScheduledDate.Time.Format(booking.DateLayout)
	}
	if b.DroneID.Valid {
		id := b.DroneID.Int32
		resp.DroneID = &id
	}
	if b.PilotID.Valid {
		id := b.PilotID.Int32
		resp.PilotID = &id
	}
	if b.CreatedAt.Valid {
		resp.CreatedAt = b.CreatedAt.Time.Format(timestampLayout)
	}

	return resp
}

func toPriceItemResponse(item sqlgen.PriceItem) model.PriceItemResponse {
	return model.PriceItemResponse{
		Key:         item.Key,
		Name:        item.Name,
		PricePerRai: money(common.DecimalFromNumeric(item.PricePerRai)),
		SortOrder:   item.SortOrder,
		Active:      item.Active,
	}
}

// priceListResponse renders a snapshot for clients.
func priceListResponse(table *booking.PriceTable, depositRate decimal.Decimal) model.PriceListResponse {
	resp := model.PriceListResponse{
		Crops:       make([]model.PriceItemResponse, 0),
		Sprays:      make([]model.PriceItemResponse, 0),
		DepositRate: depositRate.String(),
	}

	for _, item := range table.Crops() {
		resp.Crops = append(resp.Crops, model.PriceItemResponse{Key: item.Key, Name: item.Name, PricePerRai: money(item.PricePerRai), Active: true})
	}
	for _, item := range table.Sprays() {
		resp.Sprays = append(resp.Sprays, model.PriceItemResponse{Key: item.Key, Name: item.Name, PricePerRai: money(item.PricePerRai), Active: true})
	}

	return resp
}

func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(booking.DateLayout)
}
