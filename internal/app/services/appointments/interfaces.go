package appointments

import (
	"context"

	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	GetAppointments(ctx context.Context) ([]responses.Appointment, error)
	GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteByID(ctx context.Context, appointmentID string) error
}
