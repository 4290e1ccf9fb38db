package routers

import (
	"dentalclinic-service/internal/app/delivery/http/middlewares"
	"dentalclinic-service/internal/app/services/appointments"
	"dentalclinic-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	appointmentController *appointments.AppointmentController,
) {
	router.Use(middlewares.Authenticate)

	router.Get("/", appointmentController.GetAppointments)
	router.With(
		middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist),
	).Post("/", appointmentController.CreateAppointment)

	router.Route("/{appointmentID}", func(r chi.Router) {
		r.Get("/", appointmentController.GetAppointmentByID)
		r.With(
			middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist),
		).Put("/", appointmentController.UpdateAppointment)
		r.With(
			middlewares.RequireRoles(constvars.RoleAdmin),
		).Delete("/", appointmentController.DeleteAppointment)
	})
}
