package handlers

import (
	"wirecalc/internal/logger"
	"wirecalc/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Calculator state stream on the same port (HTTP upgrade)
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerCalculatorRoutes(api)
		h.registerWireRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerCalculatorRoutes(api *gin.RouterGroup) {
	calc := api.Group("/calculator")
	{
		// Body example: {"field":"volts","value":"120"}
		calc.POST("/input", h.calculatorInput)
		calc.POST("/reset", h.calculatorReset)
		calc.GET("/state", h.getState)
	}
}

func (h *Handler) registerWireRoutes(api *gin.RouterGroup) {
	wire := api.Group("/wire")
	{
		wire.GET("/gauges", h.getGauges)
		wire.GET("/loss", h.getLossTable)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
