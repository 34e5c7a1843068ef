package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/students-api/api/swagger"
	"github.com/noah-isme/students-api/internal/handler"
	internalmiddleware "github.com/noah-isme/students-api/internal/middleware"
	"github.com/noah-isme/students-api/internal/models"
	"github.com/noah-isme/students-api/internal/service"
	"github.com/noah-isme/students-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/students-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/students-api/pkg/middleware/requestid"
)

// Deps bundles what the router needs to serve requests.
type Deps struct {
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	Auth           internalmiddleware.RoleResolver
	Students       *handler.StudentHandler
	MetricsHandler *handler.MetricsHandler
	AllowedOrigins []string
	EnableDocs     bool
}

// NewRouter wires middleware and routes.
func NewRouter(d Deps) *gin.Engine {
	logr := d.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(internalmiddleware.Metrics(d.Metrics))
	// An empty AllowedOrigins admits any origin.
	r.Use(corsmiddleware.New(d.AllowedOrigins))

	r.GET("/health", d.MetricsHandler.Health)
	r.GET("/ready", d.MetricsHandler.Ready)
	r.GET("/metrics", d.MetricsHandler.Prometheus)

	if d.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	students := r.Group("/students", internalmiddleware.Authenticate(d.Auth, d.Metrics))
	superAdmin := internalmiddleware.RequireRole(models.RoleSuperAdmin, d.Metrics)
	students.GET("", d.Students.List)
	students.GET("/export", d.Students.Export)
	students.POST("", superAdmin, d.Students.Create)
	students.PUT("/:id", superAdmin, d.Students.Update)
	students.DELETE("/:id", superAdmin, d.Students.Delete)

	return r
}
