package appointments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/app/services/shared/notifications"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryAppointmentRepository struct {
	mu           sync.Mutex
	seq          int
	appointments map[string]*models.Appointment
}

func newMemoryAppointmentRepository() *memoryAppointmentRepository {
	return &memoryAppointmentRepository{appointments: make(map[string]*models.Appointment)}
}

func (r *memoryAppointmentRepository) CreateAppointment(_ context.Context, appointment *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := "appointment-" + string(rune('0'+r.seq))
	stored := *appointment
	stored.ID = id
	r.appointments[id] = &stored
	return id, nil
}

func (r *memoryAppointmentRepository) FindAll(_ context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		result = append(result, *a)
	}
	return result, nil
}

func (r *memoryAppointmentRepository) FindByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	clone := *appointment
	return &clone, nil
}

func (r *memoryAppointmentRepository) UpdateAppointment(_ context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *appointment
	r.appointments[appointment.ID] = &stored
	return nil
}

func (r *memoryAppointmentRepository) DeleteByID(_ context.Context, appointmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.appointments, appointmentID)
	return nil
}

// stubPatientRepository resolves exactly one known patient ID.
type stubPatientRepository struct {
	knownID string
}

func (r *stubPatientRepository) CreatePatient(_ context.Context, _ *models.Patient) (string, error) {
	return r.knownID, nil
}

func (r *stubPatientRepository) FindAll(_ context.Context) ([]models.Patient, error) {
	return nil, nil
}

func (r *stubPatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	if patientID == r.knownID {
		return &models.Patient{ID: patientID, Name: "Jane Roe"}, nil
	}
	return nil, nil
}

func (r *stubPatientRepository) FindByEmail(_ context.Context, _ string) (*models.Patient, error) {
	return nil, nil
}

func (r *stubPatientRepository) UpdatePatient(_ context.Context, _ *models.Patient) error {
	return nil
}

func (r *stubPatientRepository) DeleteByID(_ context.Context, _ string) error {
	return nil
}

func (r *stubPatientRepository) PushAttachment(_ context.Context, _ string, _ *models.Attachment) error {
	return nil
}

func (r *stubPatientRepository) PullAttachment(_ context.Context, _, _ string) error {
	return nil
}

type recordingNotificationService struct {
	mu        sync.Mutex
	published []notifications.AppointmentNotification
	fail      bool
}

func (s *recordingNotificationService) PublishAppointmentCreated(_ context.Context, notification *notifications.AppointmentNotification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("broker unavailable")
	}
	s.published = append(s.published, *notification)
	return nil
}

func TestCreateAppointment(t *testing.T) {
	repo := newMemoryAppointmentRepository()
	broker := &recordingNotificationService{}
	uc := NewAppointmentUsecase(zap.NewNop(), repo, &stubPatientRepository{knownID: "patient-1"}, broker)

	start := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	created, err := uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
		PatientID:   "patient-1",
		DentistName: "Dr. Smith",
		StartTime:   start.Format(time.RFC3339),
		Reason:      "Routine check-up",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, constvars.AppointmentStatusScheduled, created.Status, "a new appointment starts in scheduled state")
	assert.Equal(t, 30, created.DurationMinutes, "duration defaults when the payload omits it")
	assert.True(t, created.StartTime.Equal(start))

	require.Len(t, broker.published, 1)
	assert.Equal(t, created.ID, broker.published[0].AppointmentID)
	assert.Equal(t, "patient-1", broker.published[0].PatientID)
}

func TestCreateAppointment_UnknownPatient(t *testing.T) {
	repo := newMemoryAppointmentRepository()
	uc := NewAppointmentUsecase(zap.NewNop(), repo, &stubPatientRepository{knownID: "patient-1"}, nil)

	_, err := uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
		PatientID:   "unknown-patient",
		DentistName: "Dr. Smith",
		StartTime:   time.Now().Add(time.Hour).Format(time.RFC3339),
	})

	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	assert.Empty(t, repo.appointments, "nothing should be booked against an unknown patient")
}

func TestCreateAppointment_BadStartTime(t *testing.T) {
	uc := NewAppointmentUsecase(zap.NewNop(), newMemoryAppointmentRepository(), &stubPatientRepository{knownID: "patient-1"}, nil)

	_, err := uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
		PatientID:   "patient-1",
		DentistName: "Dr. Smith",
		StartTime:   "next tuesday",
	})

	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestCreateAppointment_NotificationFailureIsIgnored(t *testing.T) {
	repo := newMemoryAppointmentRepository()
	broker := &recordingNotificationService{fail: true}
	uc := NewAppointmentUsecase(zap.NewNop(), repo, &stubPatientRepository{knownID: "patient-1"}, broker)

	created, err := uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
		PatientID:   "patient-1",
		DentistName: "Dr. Smith",
		StartTime:   time.Now().Add(time.Hour).Format(time.RFC3339),
	})

	require.NoError(t, err, "a failed publish must not fail the booking")
	assert.NotEmpty(t, created.ID)
	assert.Len(t, repo.appointments, 1)
}

func TestUpdateAppointment(t *testing.T) {
	repo := newMemoryAppointmentRepository()
	uc := NewAppointmentUsecase(zap.NewNop(), repo, &stubPatientRepository{knownID: "patient-1"}, nil)

	created, err := uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
		PatientID:       "patient-1",
		DentistName:     "Dr. Smith",
		StartTime:       time.Now().Add(time.Hour).Format(time.RFC3339),
		DurationMinutes: 45,
	})
	require.NoError(t, err)

	t.Run("Status Transition", func(t *testing.T) {
		status := constvars.AppointmentStatusCompleted
		updated, err := uc.UpdateAppointment(context.Background(), created.ID, &requests.UpdateAppointment{
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, updated.Status)
		assert.Equal(t, 45, updated.DurationMinutes, "fields absent from the payload stay untouched")
	})

	t.Run("Bad Start Time", func(t *testing.T) {
		badTime := "not-a-timestamp"
		_, err := uc.UpdateAppointment(context.Background(), created.ID, &requests.UpdateAppointment{
			StartTime: &badTime,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Unknown Appointment", func(t *testing.T) {
		reason := "follow-up"
		_, err := uc.UpdateAppointment(context.Background(), "does-not-exist", &requests.UpdateAppointment{
			Reason: &reason,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestDeleteAppointment(t *testing.T) {
	repo := newMemoryAppointmentRepository()
	uc := NewAppointmentUsecase(zap.NewNop(), repo, &stubPatientRepository{knownID: "patient-1"}, nil)

	created, err := uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
		PatientID:   "patient-1",
		DentistName: "Dr. Smith",
		StartTime:   time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAppointment(context.Background(), created.ID))

	_, err = uc.GetAppointmentByID(context.Background(), created.ID)
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)

	err = uc.DeleteAppointment(context.Background(), created.ID)
	require.Error(t, err, "deleting twice should report not found")
}
