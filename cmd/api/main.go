// Package main is the entry point for the Fintrack API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fintrack/backend/config"
	"github.com/fintrack/backend/internal/application/usecase/category"
	"github.com/fintrack/backend/internal/application/usecase/report"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/application/usecase/user"
	"github.com/fintrack/backend/internal/infra/db"
	"github.com/fintrack/backend/internal/infra/server/router"
	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/persistence"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Fintrack API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	healthController := controller.NewHealthController(database.HealthCheck)

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())

	// Create user use cases
	registerUserUseCase := user.NewRegisterUserUseCase(userRepo)
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(userRepo, categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(userRepo, categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(userRepo, categoryRepo, transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listByUserUseCase := transaction.NewListByUserUseCase(userRepo, transactionRepo)
	listByCategoryUseCase := transaction.NewListByCategoryUseCase(categoryRepo, transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	generateReportUseCase := report.NewGenerateReportUseCase(userRepo, transactionRepo)

	// Create controllers
	userController := controller.NewUserController(registerUserUseCase, getUserUseCase, listUsersUseCase)
	categoryController := controller.NewCategoryController(createCategoryUseCase, getCategoryUseCase, listCategoriesUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listByUserUseCase,
		listByCategoryUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		generateReportUseCase,
	)

	// Setup router
	r := router.NewRouter(healthController, userController, categoryController, transactionController)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
