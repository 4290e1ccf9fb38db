package attachments

import (
	"context"
	"errors"
	"io"
	"sync"

	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/exceptions"
)

// fakePatientRepository keeps patients in memory and mirrors the repository's
// not-found contract: FindByID returns (nil, nil) for unknown IDs.
type fakePatientRepository struct {
	mu       sync.Mutex
	patients map[string]*models.Patient

	pushCalls int
	pullCalls int
}

func newFakePatientRepository() *fakePatientRepository {
	return &fakePatientRepository{patients: make(map[string]*models.Patient)}
}

func (r *fakePatientRepository) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := "patient-" + patient.Email
	stored := *patient
	stored.ID = id
	r.patients[id] = &stored
	return id, nil
}

func (r *fakePatientRepository) FindAll(_ context.Context) ([]models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		result = append(result, *p)
	}
	return result, nil
}

func (r *fakePatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient, ok := r.patients[patientID]
	if !ok {
		return nil, nil
	}
	clone := *patient
	clone.Attachments = append([]models.Attachment(nil), patient.Attachments...)
	return &clone, nil
}

func (r *fakePatientRepository) FindByEmail(_ context.Context, email string) (*models.Patient, error) {
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

func (r *fakePatientRepository) UpdatePatient(_ context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[patient.ID]; !ok {
		return exceptions.ErrPatientNotExist(nil)
	}
	stored := *patient
	r.patients[patient.ID] = &stored
	return nil
}

func (r *fakePatientRepository) DeleteByID(_ context.Context, patientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.patients, patientID)
	return nil
}

func (r *fakePatientRepository) PushAttachment(_ context.Context, patientID string, attachment *models.Attachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pushCalls++
	patient, ok := r.patients[patientID]
	if !ok {
		return exceptions.ErrPatientNotExist(nil)
	}
	patient.Attachments = append(patient.Attachments, *attachment)
	return nil
}

func (r *fakePatientRepository) PullAttachment(_ context.Context, patientID, attachmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pullCalls++
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

// fakeObjectStorage records stored objects keyed by object name.
type fakeObjectStorage struct {
	mu      sync.Mutex
	objects map[string][]byte

	putCalls    int
	removeCalls int
	failPut     bool
	failRemove  bool
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: make(map[string][]byte)}
}

func (s *fakeObjectStorage) PutObject(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putCalls++
	if s.failPut {
		return exceptions.ErrStorageCreateObject(errors.New("put rejected"), "test-bucket")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectName] = data
	return nil
}

func (s *fakeObjectStorage) RemoveObject(_ context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeCalls++
	if s.failRemove {
		return exceptions.ErrStorageRemoveObject(errors.New("remove rejected"), "test-bucket")
	}
	delete(s.objects, objectName)
	return nil
}
