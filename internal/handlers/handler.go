package handlers

import (
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/skuma49/my-node-app/internal/logger"
	"github.com/skuma49/my-node-app/internal/service"
)

// Handler wires the HTTP layer to services and logging. env controls whether
// fault detail is echoed in 500 responses.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	env      string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, env string) *Handler {
	return &Handler{services: services, log: log, env: env}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.requestID, h.cors, h.requestLogger)
	router.Use(gin.CustomRecovery(h.recovered))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Welcome + live change feed (same port)
	router.GET("/", h.root)
	router.GET("/ws", h.wsEvents)

	h.registerAPIRoutes(router)

	router.NoRoute(h.routeNotFound)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/status", h.status)

		users := api.Group("/users")
		{
			users.GET("", h.listUsers)
			users.POST("", h.createUser)
			users.POST("/bulk", h.bulkUsers)
			users.GET("/:id", h.getUser)
			users.PUT("/:id", h.updateUser)
			users.DELETE("/:id", h.deleteUser)
		}

		products := api.Group("/products")
		{
			products.GET("", h.listProducts)
			products.POST("", h.createProduct)
			products.GET("/:id", h.getProduct)
			products.PUT("/:id", h.updateProduct)
			products.DELETE("/:id", h.deleteProduct)
		}

		search := api.Group("/search")
		{
			search.GET("/users", h.searchUsers)
			search.GET("/products", h.searchProducts)
		}
	}
}
