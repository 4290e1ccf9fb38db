package routers

import (
	"dentalclinic-service/internal/app/delivery/http/middlewares"
	"dentalclinic-service/internal/app/services/attachments"
	"dentalclinic-service/internal/app/services/patients"
	"dentalclinic-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	attachmentController *attachments.AttachmentController,
) {
	router.Use(middlewares.Authenticate)

	router.Get("/", patientController.GetPatients)
	router.With(
		middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist),
	).Post("/", patientController.CreatePatient)

	router.Route("/{patientID}", func(r chi.Router) {
		r.Get("/", patientController.GetPatientByID)
		r.With(
			middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist),
		).Put("/", patientController.UpdatePatient)
		r.With(
			middlewares.RequireRoles(constvars.RoleAdmin),
		).Delete("/", patientController.DeletePatient)

		r.Route("/attachments", func(r chi.Router) {
			r.With(
				middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDentist, constvars.RoleReceptionist),
			).Post("/", attachmentController.UploadAttachment)
			r.With(
				middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDentist, constvars.RoleReceptionist),
			).Get("/", attachmentController.GetAttachments)
			r.With(
				middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDentist),
			).Delete("/{attachmentID}", attachmentController.DeleteAttachment)
		})
	})
}
