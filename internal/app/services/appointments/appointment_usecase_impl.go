package appointments

import (
	"context"
	"errors"
	"time"

	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/app/services/patients"
	"dentalclinic-service/internal/app/services/shared/notifications"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const defaultDurationMinutes = 30

type appointmentUsecase struct {
	Log                   *zap.Logger
	AppointmentRepository AppointmentRepository
	PatientRepository     patients.PatientRepository
	NotificationService   notifications.NotificationService
}

func NewAppointmentUsecase(
	logger *zap.Logger,
	appointmentRepository AppointmentRepository,
	patientRepository patients.PatientRepository,
	notificationService notifications.NotificationService,
) AppointmentUsecase {
	return &appointmentUsecase{
		Log:                   logger,
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		NotificationService:   notificationService,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	startTime, err := time.Parse(time.RFC3339, request.StartTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound {
			return nil, exceptions.ErrPatientNotExist(err)
		}
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	duration := request.DurationMinutes
	if duration == 0 {
		duration = defaultDurationMinutes
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:       request.PatientID,
		DentistName:     request.DentistName,
		StartTime:       startTime,
		DurationMinutes: duration,
		Reason:          request.Reason,
		Status:          constvars.AppointmentStatusScheduled,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	// Fire-and-forget: a notification that fails to publish never fails the
	// booking.
	if uc.NotificationService != nil {
		notification := &notifications.AppointmentNotification{
			AppointmentID: appointmentID,
			PatientID:     appointment.PatientID,
			StartTime:     appointment.StartTime.Format(time.RFC3339),
		}
		if err := uc.NotificationService.PublishAppointmentCreated(ctx, notification); err != nil {
			uc.Log.Warn("failed to publish appointment notification",
				zap.String("appointment_id", appointmentID),
				zap.Error(err),
			)
		}
	}

	return utils.MapAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) GetAppointments(ctx context.Context) ([]responses.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *utils.MapAppointmentToResponse(&appointments[i]))
	}
	return result, nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.findExistingAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	return utils.MapAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.findExistingAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if request.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *request.StartTime)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		appointment.StartTime = startTime
	}
	if request.DentistName != nil {
		appointment.DentistName = *request.DentistName
	}
	if request.DurationMinutes != nil {
		appointment.DurationMinutes = *request.DurationMinutes
	}
	if request.Reason != nil {
		appointment.Reason = *request.Reason
	}
	if request.Status != nil {
		appointment.Status = *request.Status
	}
	appointment.UpdatedAt = time.Now()

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return utils.MapAppointmentToResponse(appointment), nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if _, err := uc.findExistingAppointment(ctx, appointmentID); err != nil {
		return err
	}
	return uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
}

func (uc *appointmentUsecase) findExistingAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound {
			return nil, exceptions.ErrAppointmentNotExist(err)
		}
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	return appointment, nil
}
