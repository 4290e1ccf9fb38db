package patients

import (
	"context"

	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	GetPatients(ctx context.Context) ([]responses.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeleteByID(ctx context.Context, patientID string) error
	PushAttachment(ctx context.Context, patientID string, attachment *models.Attachment) error
	PullAttachment(ctx context.Context, patientID, attachmentID string) error
}
