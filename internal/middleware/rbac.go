package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/students-api/internal/models"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
	"github.com/noah-isme/students-api/pkg/response"
)

// RequireRole admits only callers whose role equals required exactly.
// There is no hierarchy between roles.
func RequireRole(required models.Role, denials DenialRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFromContext(c)
		if !ok {
			recordDenial(denials, appErrors.ErrUnauthenticated)
			response.Abort(c, appErrors.ErrUnauthenticated)
			return
		}
		if role != required {
			recordDenial(denials, appErrors.ErrForbidden)
			response.Abort(c, appErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
