package v1

import (
	"net/http"

	"md-terceirizacao-api/internal/delivery/http/middleware"
	"md-terceirizacao-api/internal/domain"
	"md-terceirizacao-api/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	ApplicationUC domain.ApplicationUsecase
	HealthUC      usecase.HealthUsecase
	Stager        ResumeStager
	AliveMessage  string // plain-text body of GET /
	RateLimit     middleware.RateLimitConfig
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())

	// Liveness marker
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, deps.AliveMessage)
	})

	NewHealthHandler(r.Group(""), deps.HealthUC)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public form endpoints
	api := r.Group("/api")
	api.Use(middleware.SecurityHeadersMiddleware())
	api.Use(middleware.RateLimitMiddleware(deps.RateLimit))
	{
		NewContactHandler(api, deps.ContactUC)
		NewApplicationHandler(api, deps.ApplicationUC, deps.Stager)
	}

	return r
}
