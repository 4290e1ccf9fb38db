package attachments

import (
	"context"
	"net/http"
	"time"

	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/requests"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AttachmentController struct {
	Log               *zap.Logger
	AttachmentUsecase AttachmentUsecase
	MaxUploadSizeInMB int64
}

func NewAttachmentController(logger *zap.Logger, attachmentUsecase AttachmentUsecase, maxUploadSizeInMB int64) *AttachmentController {
	return &AttachmentController{
		Log:               logger,
		AttachmentUsecase: attachmentUsecase,
		MaxUploadSizeInMB: maxUploadSizeInMB,
	}
}

func (ctrl *AttachmentController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	// One MB of slack so an oversized upload surfaces as a validation error
	// from the usecase instead of a broken multipart read.
	r.Body = http.MaxBytesReader(w, r.Body, (ctrl.MaxUploadSizeInMB+1)<<20)
	if err := r.ParseMultipartForm(ctrl.MaxUploadSizeInMB << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.MultipartFileField)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileMissing(err))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	request := &requests.UploadAttachment{
		PatientID:    patientID,
		OriginalName: fileHeader.Filename,
		ContentType:  contentType,
		Size:         fileHeader.Size,
		Payload:      file,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.AttachmentUsecase.UploadAttachment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccessMessage, response)
}

func (ctrl *AttachmentController) GetAttachments(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AttachmentUsecase.GetAttachments(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAttachmentsSuccessMessage, response)
}

func (ctrl *AttachmentController) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	attachmentID := chi.URLParam(r, constvars.URLParamAttachmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AttachmentUsecase.DeleteAttachment(ctx, patientID, attachmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAttachmentSuccessMessage, nil)
}
