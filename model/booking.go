package model

import "agri-drone/core/booking"

type CreateBookingRequest struct {
	CustomerName   string        `json:"customer_name"`
	PhoneNumber    string        `json:"phone_number"`
	AreaSize       NumericString `json:"area_size"`
	CropType       string        `json:"crop_type"`
	SprayType      string        `json:"spray_type"`
	GPSCoordinates string        `json:"gps_coordinates"`
	SelectedDate   string        `json:"selected_date"`
	Notes          string        `json:"notes"`
	LineUserID     string        `json:"line_user_id"`
}

func (r CreateBookingRequest) ToBookingRequest() booking.Request {
	return booking.Request{
		CustomerName:   r.CustomerName,
		PhoneNumber:    r.PhoneNumber,
		AreaSize:       r.AreaSize.String(),
		CropType:       r.CropType,
		SprayType:      r.SprayType,
		GPSCoordinates: r.GPSCoordinates,
		SelectedDate:   r.SelectedDate,
		Notes:          r.Notes,
		LineUserID:     r.LineUserID,
	}
}

type CreateBookingResponse struct {
	Id            int32  `json:"id"`
	BookingCode   string `json:"booking_code"`
	TotalPrice    string `json:"total_price"`
	DepositAmount string `json:"deposit_amount"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

type BookingResponse struct {
	Id             int32  `json:"id"`
	BookingCode    string `json:"booking_code"`
	CustomerName   string `json:"customer_name"`
	PhoneNumber    string `json:"phone_number"`
	AreaSize       string `json:"area_size"`
	CropType       string `json:"crop_type"`
	SprayType      string `json:"spray_type"`
	GPSCoordinates string `json:"gps_coordinates"`
	ScheduledDate  string `json:"scheduled_date,omitempty"`
	Notes          string `json:"notes"`
	TotalPrice     string `json:"total_price"`
	DepositAmount  string `json:"deposit_amount"`
	Status         string `json:"status"`
	LineUserID     string `json:"line_user_id,omitempty"`
	HasSlip        bool   `json:"has_slip"`
	DroneID        *int32 `json:"drone_id,omitempty"`
	PilotID        *int32 `json:"pilot_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type QuoteRequest struct {
	CropType  string        `json:"crop_type" validate:"required"`
	SprayType string        `json:"spray_type" validate:"required"`
	AreaSize  NumericString `json:"area_size" validate:"required"`
}

type QuoteResponse struct {
	CropUnitPrice  string `json:"crop_unit_price"`
	SprayUnitPrice string `json:"spray_unit_price"`
	TotalPrice     string `json:"total_price"`
	DepositAmount  string `json:"deposit_amount"`
	Balance        string `json:"balance"`
}

type UploadSlipResponse struct {
	BookingCode string `json:"booking_code"`
	Status      string `json:"status"`
	Message     string `json:"message"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending_payment paid completed cancelled"`
}

type AssignBookingRequest struct {
	DroneID int32 `json:"drone_id" validate:"required,gt=0"`
	PilotID int32 `json:"pilot_id" validate:"required,gt=0"`
}
