package attachments

import (
	"context"
	"errors"
	"io"
	"time"

	"dentalclinic-service/internal/app/config"
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/app/services/patients"
	"dentalclinic-service/internal/app/services/shared/storage"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type attachmentUsecase struct {
	Log               *zap.Logger
	PatientRepository patients.PatientRepository
	ObjectStorage     storage.ObjectStorage
	UploadConfig      config.Upload
}

func NewAttachmentUsecase(
	logger *zap.Logger,
	patientRepository patients.PatientRepository,
	objectStorage storage.ObjectStorage,
	uploadConfig config.Upload,
) AttachmentUsecase {
	return &attachmentUsecase{
		Log:               logger,
		PatientRepository: patientRepository,
		ObjectStorage:     objectStorage,
		UploadConfig:      uploadConfig,
	}
}

func (uc *attachmentUsecase) UploadAttachment(ctx context.Context, request *requests.UploadAttachment) (*responses.Attachment, error) {
	if request.Payload == nil || request.OriginalName == "" {
		return nil, exceptions.ErrFileMissing(nil)
	}

	maxSizeBytes := uc.UploadConfig.MaxUploadSizeInMB << 20
	if request.Size > maxSizeBytes {
		return nil, exceptions.ErrFileTooLarge(nil, uc.UploadConfig.MaxUploadSizeInMB)
	}

	if _, err := uc.findExistingPatient(ctx, request.PatientID); err != nil {
		return nil, err
	}

	attachment := &models.Attachment{
		ID:           utils.GenerateAttachmentID(),
		OriginalName: request.OriginalName,
		ContentType:  request.ContentType,
		Size:         request.Size,
		UploadedAt:   time.Now(),
	}

	// In reference mode the bytes go to object storage before the record
	// mutation, so a failed write leaves no dangling metadata behind.
	switch uc.UploadConfig.Mode {
	case constvars.StorageModeInline:
		data, err := io.ReadAll(io.LimitReader(request.Payload, maxSizeBytes+1))
		if err != nil {
			return nil, exceptions.ErrServerProcess(err)
		}
		if int64(len(data)) > maxSizeBytes {
			return nil, exceptions.ErrFileTooLarge(nil, uc.UploadConfig.MaxUploadSizeInMB)
		}
		attachment.Data = data
		attachment.Size = int64(len(data))
	default:
		objectName := utils.GenerateObjectName(constvars.MultipartFileField, request.OriginalName)
		err := uc.ObjectStorage.PutObject(ctx, objectName, request.Payload, request.Size, request.ContentType)
		if err != nil {
			return nil, err
		}
		attachment.ObjectName = objectName
	}

	if err := uc.PatientRepository.PushAttachment(ctx, request.PatientID, attachment); err != nil {
		return nil, err
	}

	return utils.MapAttachmentToResponse(attachment), nil
}

func (uc *attachmentUsecase) GetAttachments(ctx context.Context, patientID string) ([]responses.Attachment, error) {
	patient, err := uc.findExistingPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return utils.MapAttachmentsToResponse(patient.Attachments), nil
}

func (uc *attachmentUsecase) DeleteAttachment(ctx context.Context, patientID, attachmentID string) error {
	patient, err := uc.findExistingPatient(ctx, patientID)
	if err != nil {
		return err
	}

	var attachment *models.Attachment
	for i := range patient.Attachments {
		if patient.Attachments[i].ID == attachmentID {
			attachment = &patient.Attachments[i]
			break
		}
	}
	if attachment == nil {
		return exceptions.ErrAttachmentNotExist(nil)
	}

	if err := uc.PatientRepository.PullAttachment(ctx, patientID, attachmentID); err != nil {
		return err
	}

	// Physical removal is best-effort: a failure is logged and the record
	// mutation stands.
	if uc.UploadConfig.Mode == constvars.StorageModeReference && attachment.ObjectName != "" {
		if err := uc.ObjectStorage.RemoveObject(ctx, attachment.ObjectName); err != nil {
			uc.Log.Warn("failed to remove attachment object",
				zap.String("patient_id", patientID),
				zap.String("attachment_id", attachmentID),
				zap.String("object_name", attachment.ObjectName),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (uc *attachmentUsecase) findExistingPatient(ctx context.Context, patientID string) (*models.Patient, error) {
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
