package routers

import (
	"dentalclinic-service/internal/app/delivery/http/middlewares"
	"dentalclinic-service/internal/app/services/auth"
	"dentalclinic-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.RoleAdmin),
	).Post("/register", authController.Register)
}
