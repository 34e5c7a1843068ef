package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/students-api/internal/models"
	"github.com/noah-isme/students-api/internal/service"
	"github.com/noah-isme/students-api/pkg/config"
)

type denialCounter map[string]int

func (d denialCounter) RecordDenial(reason string) { d[reason]++ }

func newGateRouter(denials denialCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := service.NewAuthService(config.AuthConfig{TokenMode: config.TokenModeHeader}, nil)
	r := gin.New()
	r.Use(Authenticate(auth, denials))
	r.GET("/whoami", func(c *gin.Context) {
		role, _ := RoleFromContext(c)
		c.String(http.StatusOK, string(role))
	})
	r.POST("/write", RequireRole(models.RoleSuperAdmin, denials), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateRequiresToken(t *testing.T) {
	denials := denialCounter{}
	r := newGateRouter(denials)

	for _, tc := range []struct{ method, path string }{{http.MethodGet, "/whoami"}, {http.MethodPost, "/write"}} {
		w := do(r, tc.method, tc.path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized: No token provided"}`, w.Body.String())
	}
	assert.Equal(t, 2, denials["UNAUTHENTICATED"])
}

func TestAuthenticateAttachesRole(t *testing.T) {
	w := do(newGateRouter(denialCounter{}), http.MethodGet, "/whoami", `{"role":"teacher"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "teacher", w.Body.String())
}

func TestRequireRoleExactMatch(t *testing.T) {
	denials := denialCounter{}
	r := newGateRouter(denials)

	for _, token := range []string{"admin", "teacher", "student", "SUPER_ADMIN", "root"} {
		w := do(r, http.MethodPost, "/write", token)
		assert.Equal(t, http.StatusForbidden, w.Code, token)
		assert.JSONEq(t, `{"error":"Forbidden: Insufficient permissions"}`, w.Body.String())
	}
	assert.Equal(t, 5, denials["FORBIDDEN"])

	w := do(r, http.MethodPost, "/write", "super_admin")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequireRoleWithoutAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/write", RequireRole(models.RoleSuperAdmin, nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := do(r, http.MethodPost, "/write", "super_admin")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMetricsMiddlewareUsesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metrics))
	r.DELETE("/students/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	do(r, http.MethodDelete, "/students/5", "")

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `path="/students/:id"`)
}
