package model

type BookingCreatedEventMessage struct {
	ID            int32  `json:"id"`
	BookingCode   string `json:"booking_code"`
	CustomerName  string `json:"customer_name"`
	PhoneNumber   string `json:"phone_number"`
	TotalPrice    string `json:"total_price"`
	DepositAmount string `json:"deposit_amount"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	LineUserID    string `json:"line_user_id,omitempty"`
}

type BookingStatusChangedEventMessage struct {
	BookingCode string `json:"booking_code"`
	FromStatus  string `json:"from_status"`
	ToStatus    string `json:"to_status"`
	ChangedBy   string `json:"changed_by"`
	LineUserID  string `json:"line_user_id,omitempty"`
}

type BookingAssignedEventMessage struct {
	BookingCode string `json:"booking_code"`
	DroneID     int32  `json:"drone_id"`
	PilotID     int32  `json:"pilot_id"`
}
