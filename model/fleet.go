package model

type DroneRequest struct {
	SerialNumber string        `json:"serial_number" validate:"required,max=64"`
	Model        string        `json:"model" validate:"required,max=128"`
	TankLiters   NumericString `json:"tank_liters"`
	Status       string        `json:"status" validate:"omitempty,oneof=available in_use maintenance retired"`
}

type DroneResponse struct {
	Id           int32  `json:"id"`
	SerialNumber string `json:"serial_number"`
	Model        string `json:"model"`
	TankLiters   string `json:"tank_liters"`
	Status       string `json:"status"`
}

type PilotRequest struct {
	Name      string `json:"name" validate:"required,max=128"`
	Phone     string `json:"phone" validate:"required,max=16"`
	LicenseNo string `json:"license_no" validate:"required,max=64"`
	Active    *bool  `json:"active"`
}

type PilotResponse struct {
	Id        int32  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"license_no"`
	Active    bool   `json:"active"`
}

type EquipmentRequest struct {
	Name      string        `json:"name" validate:"required,max=128"`
	Category  string        `json:"category" validate:"required,max=64"`
	DailyRate NumericString `json:"daily_rate" validate:"required"`
	Status    string        `json:"status" validate:"omitempty,oneof=available rented maintenance retired"`
}

type EquipmentResponse struct {
	Id        int32  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	DailyRate string `json:"daily_rate"`
	Status    string `json:"status"`
}
