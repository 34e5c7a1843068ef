package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/students-api/internal/models"
	appErrors "github.com/noah-isme/students-api/pkg/errors"
	"github.com/noah-isme/students-api/pkg/response"
)

// ContextRoleKey is the gin context key storing the caller's role.
const ContextRoleKey = "callerRole"

// TokenHeader carries the caller's identity token.
const TokenHeader = "token"

// RoleResolver derives a role from the identity token.
type RoleResolver interface {
	ResolveRole(token string) (models.Role, error)
}

// DenialRecorder counts rejected requests.
type DenialRecorder interface {
	RecordDenial(reason string)
}

// Authenticate requires an identity token and attaches the resolved role.
func Authenticate(resolver RoleResolver, denials DenialRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := resolver.ResolveRole(c.GetHeader(TokenHeader))
		if err != nil {
			recordDenial(denials, err)
			response.Abort(c, err)
			return
		}

		c.Set(ContextRoleKey, role)
		c.Next()
	}
}

// RoleFromContext returns the role attached by Authenticate.
func RoleFromContext(c *gin.Context) (models.Role, bool) {
	value, exists := c.Get(ContextRoleKey)
	if !exists {
		return "", false
	}
	role, ok := value.(models.Role)
	return role, ok
}

func recordDenial(denials DenialRecorder, err error) {
	if denials == nil {
		return
	}
	denials.RecordDenial(appErrors.FromError(err).Code)
}
