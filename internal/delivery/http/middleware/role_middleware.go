package middleware

import (
	"net/http"

	"bloodlink-api/internal/domain/entity"
	"bloodlink-api/pkg/response"
)

// RequireRole creates a middleware that checks if the user signed in under
// any of the allowed roles. The role is read from context, set by
// AuthMiddleware from the JWT claims.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireDonor is a convenience middleware for donor-only endpoints
func RequireDonor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDonor)(next)
}

// RequireHospital is a convenience middleware for hospital-only endpoints
func RequireHospital(next http.Handler) http.Handler {
	return RequireRole(entity.RoleHospital)(next)
}
