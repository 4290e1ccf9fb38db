package notifications

import "context"

type AppointmentNotification struct {
	AppointmentID string `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	StartTime     string `json:"start_time"`
}

type NotificationService interface {
	PublishAppointmentCreated(ctx context.Context, notification *AppointmentNotification) error
}
