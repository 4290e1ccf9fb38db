package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"dentalclinic-service/internal/app/models"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/exceptions"
	"dentalclinic-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token into a session and stores it in the
// request context. It answers "who is calling"; RequireRoles answers "may
// they".
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		sessionData, err := m.SessionService.GetSession(ctx, sessionID)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx = context.WithValue(r.Context(), constvars.ContextSessionKey, sessionData)
		ctx = context.WithValue(ctx, constvars.ContextSessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route on the declared allow-list. Routes declare their
// allowed roles at mount time; the check itself lives here.
func (m *Middlewares) RequireRoles(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionData, ok := r.Context().Value(constvars.ContextSessionKey).(*models.Session)
			if !ok || sessionData == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
				return
			}

			for _, role := range allowedRoles {
				if sessionData.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
		})
	}
}
