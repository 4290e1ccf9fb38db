package patients

import (
	"context"
	"errors"
	"strings"
	"time"

	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/app/services/shared/storage"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	Log               *zap.Logger
	PatientRepository PatientRepository
	ObjectStorage     storage.ObjectStorage
	UploadConfig      config.Upload
}

func NewPatientUsecase(
	logger *zap.Logger,
	patientRepository PatientRepository,
	objectStorage storage.ObjectStorage,
	uploadConfig config.Upload,
) PatientUsecase {
	return &patientUsecase{
		Log:               logger,
		PatientRepository: patientRepository,
		ObjectStorage:     objectStorage,
		UploadConfig:      uploadConfig,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	existing, err := uc.PatientRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	now := time.Now()
	patient := &models.Patient{
		Name:        request.Name,
		Email:       email,
		Phone:       request.Phone,
		BirthDate:   request.BirthDate,
		Address:     request.Address,
		Notes:       request.Notes,
		Attachments: []models.Attachment{},
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	return utils.MapPatientToResponse(patient), nil
}

func (uc *patientUsecase) GetPatients(ctx context.Context) ([]responses.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, *utils.MapPatientToResponse(&patients[i]))
	}
	return result, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.findExistingPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return utils.MapPatientToResponse(patient), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.findExistingPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if request.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*request.Email))
		if email != patient.Email {
			existing, err := uc.PatientRepository.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, exceptions.ErrEmailAlreadyExist(nil)
			}
		}
		patient.Email = email
	}
	if request.Name != nil {
		patient.Name = *request.Name
	}
	if request.Phone != nil {
		patient.Phone = *request.Phone
	}
	if request.BirthDate != nil {
		patient.BirthDate = *request.BirthDate
	}
	if request.Address != nil {
		patient.Address = *request.Address
	}
	if request.Notes != nil {
		patient.Notes = *request.Notes
	}
	patient.UpdatedAt = time.Now()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return utils.MapPatientToResponse(patient), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	patient, err := uc.findExistingPatient(ctx, patientID)
	if err != nil {
		return err
	}

	if err := uc.PatientRepository.DeleteByID(ctx, patientID); err != nil {
		return err
	}

	// Cascade for reference mode: stored objects are swept best-effort, a
	// failed removal never undoes the record deletion.
	if uc.UploadConfig.Mode == constvars.StorageModeReference {
		for i := range patient.Attachments {
			attachment := &patient.Attachments[i]
			if attachment.ObjectName == "" {
				continue
			}
			if err := uc.ObjectStorage.RemoveObject(ctx, attachment.ObjectName); err != nil {
				uc.Log.Warn("failed to remove attachment object during patient delete",
					zap.String("patient_id", patientID),
					zap.String("object_name", attachment.ObjectName),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

func (uc *patientUsecase) findExistingPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
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
	return patient, nil
}
