// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	userController        *controller.UserController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
) *Router {
	return &Router{
		healthController:      healthController,
		userController:        userController,
		categoryController:    categoryController,
		transactionController: transactionController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", r.userController.Create)
			users.GET("", r.userController.List)
			users.GET("/:id", r.userController.GetByID)
		}

		categories := v1.Group("/categories")
		{
			categories.POST("", r.categoryController.Create)
			categories.GET("", r.categoryController.List)
			categories.GET("/:id", r.categoryController.GetByID)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.POST("", r.transactionController.Create)
			transactions.GET("", r.transactionController.List)
			// Registered before /:id so "report" is not captured as an id.
			transactions.GET("/report", r.transactionController.Report)
			transactions.GET("/:id", r.transactionController.GetByID)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}
	}
}
