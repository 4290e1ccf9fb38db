package patients

import (
	"context"
	"io"
	"sync"
	"testing"

	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryPatientRepository struct {
	mu       sync.Mutex
	seq      int
	patients map[string]*models.Patient
}

func newMemoryPatientRepository() *memoryPatientRepository {
	return &memoryPatientRepository{patients: make(map[string]*models.Patient)}
}

func (r *memoryPatientRepository) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := "patient-" + string(rune('0'+r.seq))
	stored := *patient
	stored.ID = id
	r.patients[id] = &stored
	return id, nil
}

func (r *memoryPatientRepository) FindAll(_ context.Context) ([]models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		result = append(result, *p)
	}
	return result, nil
}

func (r *memoryPatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient, ok := r.patients[patientID]
	if !ok {
		return nil, nil
	}
	clone := *patient
	return &clone, nil
}

func (r *memoryPatientRepository) FindByEmail(_ context.Context, email string) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.patients {
		if p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memoryPatientRepository) UpdatePatient(_ context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *patient
	r.patients[patient.ID] = &stored
	return nil
}

func (r *memoryPatientRepository) DeleteByID(_ context.Context, patientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.patients, patientID)
	return nil
}

func (r *memoryPatientRepository) PushAttachment(_ context.Context, patientID string, attachment *models.Attachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient, ok := r.patients[patientID]
	if !ok {
		return exceptions.ErrPatientNotExist(nil)
	}
	patient.Attachments = append(patient.Attachments, *attachment)
	return nil
}

func (r *memoryPatientRepository) PullAttachment(_ context.Context, patientID, attachmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient, ok := r.patients[patientID]
	if !ok {
		return exceptions.ErrPatientNotExist(nil)
	}
	kept := patient.Attachments[:0]
	for _, a := range patient.Attachments {
		if a.ID != attachmentID {
			kept = append(kept, a)
		}
	}
	patient.Attachments = kept
	return nil
}

type recordingObjectStorage struct {
	mu      sync.Mutex
	removed []string
}

func (s *recordingObjectStorage) PutObject(_ context.Context, _ string, _ io.Reader, _ int64, _ string) error {
	return nil
}

func (s *recordingObjectStorage) RemoveObject(_ context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, objectName)
	return nil
}

func newTestPatientUsecase(repo *memoryPatientRepository, store *recordingObjectStorage) PatientUsecase {
	return NewPatientUsecase(zap.NewNop(), repo, store, config.Upload{
		Mode:              constvars.StorageModeReference,
		BucketName:        "test-bucket",
		MaxUploadSizeInMB: 10,
	})
}

func TestCreatePatient(t *testing.T) {
	repo := newMemoryPatientRepository()
	uc := newTestPatientUsecase(repo, &recordingObjectStorage{})

	created, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:      "Jane Roe",
		Email:     "  Jane.Roe@Example.com ",
		Phone:     "+15550001111",
		BirthDate: "1990-04-12",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "jane.roe@example.com", created.Email, "email should be normalized before storage")
	assert.Equal(t, "Jane Roe", created.Name)
	assert.NotNil(t, created.Attachments, "a new patient starts with an empty attachment list")

	fetched, err := uc.GetPatientByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "jane.roe@example.com", fetched.Email)
}

func TestCreatePatient_DuplicateEmail(t *testing.T) {
	repo := newMemoryPatientRepository()
	uc := newTestPatientUsecase(repo, &recordingObjectStorage{})

	_, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:  "Jane Roe",
		Email: "jane.roe@example.com",
		Phone: "+15550001111",
	})
	require.NoError(t, err)

	_, err = uc.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:  "Someone Else",
		Email: "JANE.ROE@example.com",
		Phone: "+15550002222",
	})
	require.Error(t, err, "a second patient with the same normalized email should be rejected")
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestCreatePatient_ValidationFailure(t *testing.T) {
	repo := newMemoryPatientRepository()
	uc := newTestPatientUsecase(repo, &recordingObjectStorage{})

	_, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:  "No Email",
		Phone: "+15550001111",
	})
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestGetPatientByID_NotFound(t *testing.T) {
	repo := newMemoryPatientRepository()
	uc := newTestPatientUsecase(repo, &recordingObjectStorage{})

	_, err := uc.GetPatientByID(context.Background(), "does-not-exist")
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestUpdatePatient_PartialFields(t *testing.T) {
	repo := newMemoryPatientRepository()
	uc := newTestPatientUsecase(repo, &recordingObjectStorage{})

	created, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:  "Jane Roe",
		Email: "jane.roe@example.com",
		Phone: "+15550001111",
	})
	require.NoError(t, err)

	newPhone := "+15559998888"
	updated, err := uc.UpdatePatient(context.Background(), created.ID, &requests.UpdatePatient{
		Phone: &newPhone,
	})
	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.Phone)
	assert.Equal(t, "Jane Roe", updated.Name, "fields absent from the payload stay untouched")
	assert.Equal(t, "jane.roe@example.com", updated.Email)
}

func TestUpdatePatient_EmailTakenByOther(t *testing.T) {
	repo := newMemoryPatientRepository()
	uc := newTestPatientUsecase(repo, &recordingObjectStorage{})

	_, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:  "Jane Roe",
		Email: "jane.roe@example.com",
		Phone: "+15550001111",
	})
	require.NoError(t, err)

	second, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:  "John Doe",
		Email: "john.doe@example.com",
		Phone: "+15550002222",
	})
	require.NoError(t, err)

	takenEmail := "jane.roe@example.com"
	_, err = uc.UpdatePatient(context.Background(), second.ID, &requests.UpdatePatient{
		Email: &takenEmail,
	})
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestDeletePatient_CascadesStoredObjects(t *testing.T) {
	repo := newMemoryPatientRepository()
	store := &recordingObjectStorage{}
	uc := newTestPatientUsecase(repo, store)

	created, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:  "Jane Roe",
		Email: "jane.roe@example.com",
		Phone: "+15550001111",
	})
	require.NoError(t, err)

	require.NoError(t, repo.PushAttachment(context.Background(), created.ID, &models.Attachment{
		ID:         "att-1",
		ObjectName: "1700000000_file.png",
	}))
	require.NoError(t, repo.PushAttachment(context.Background(), created.ID, &models.Attachment{
		ID: "att-2",
		// Inline leftover without an object name; nothing to sweep.
	}))

	require.NoError(t, uc.DeletePatient(context.Background(), created.ID))

	_, err = uc.GetPatientByID(context.Background(), created.ID)
	require.Error(t, err)

	assert.Equal(t, []string{"1700000000_file.png"}, store.removed, "only referenced objects are swept")
}

func TestDeletePatient_NotFound(t *testing.T) {
	repo := newMemoryPatientRepository()
	uc := newTestPatientUsecase(repo, &recordingObjectStorage{})

	err := uc.DeletePatient(context.Background(), "does-not-exist")
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}
