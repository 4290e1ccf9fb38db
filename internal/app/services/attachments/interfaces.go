package attachments

import (
	"context"

	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/dto/responses"
)

type AttachmentUsecase interface {
	UploadAttachment(ctx context.Context, request *requests.UploadAttachment) (*responses.Attachment, error)
	GetAttachments(ctx context.Context, patientID string) ([]responses.Attachment, error)
	DeleteAttachment(ctx context.Context, patientID, attachmentID string) error
}
