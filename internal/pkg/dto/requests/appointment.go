package requests

type CreateAppointment struct {
	PatientID       string `json:"patient_id" validate:"required"`
	DentistName     string `json:"dentist_name" validate:"required,max=100"`
	StartTime       string `json:"start_time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	Reason          string `json:"reason" validate:"omitempty,max=500"`
}

type UpdateAppointment struct {
	DentistName     *string `json:"dentist_name" validate:"omitempty,max=100"`
	StartTime       *string `json:"start_time"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
	Reason          *string `json:"reason" validate:"omitempty,max=500"`
	Status          *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}
