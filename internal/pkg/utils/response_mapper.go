package utils

import (
	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/dto/responses"
)

func MapPatientToResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:          patient.ID,
		Name:        patient.Name,
		Email:       patient.Email,
		Phone:       patient.Phone,
		BirthDate:   patient.BirthDate,
		Address:     patient.Address,
		Notes:       patient.Notes,
		Attachments: MapAttachmentsToResponse(patient.Attachments),
		CreatedAt:   patient.CreatedAt,
		UpdatedAt:   patient.UpdatedAt,
	}
}

func MapAttachmentToResponse(attachment *models.Attachment) *responses.Attachment {
	return &responses.Attachment{
		ID:           attachment.ID,
		OriginalName: attachment.OriginalName,
		ContentType:  attachment.ContentType,
		Size:         attachment.Size,
		UploadedAt:   attachment.UploadedAt,
	}
}

func MapAttachmentsToResponse(attachments []models.Attachment) []responses.Attachment {
	mapped := make([]responses.Attachment, 0, len(attachments))
	for i := range attachments {
		mapped = append(mapped, *MapAttachmentToResponse(&attachments[i]))
	}
	return mapped
}

func MapAppointmentToResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DentistName:     appointment.DentistName,
		StartTime:       appointment.StartTime,
		DurationMinutes: appointment.DurationMinutes,
		Reason:          appointment.Reason,
		Status:          appointment.Status,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}
