package app

import (
	"go-onboard/internal/auth"
	"go-onboard/internal/department"
	"go-onboard/internal/messaging/kafka"
	"go-onboard/internal/middleware"
	"go-onboard/internal/notification"
	"go-onboard/internal/onboarding"
	"go-onboard/internal/preferences"
	"go-onboard/internal/rbac"
	"go-onboard/internal/task"
	"go-onboard/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	onboardingRepo := onboarding.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(userRepo)
	onboardingService := onboarding.NewService(onboardingRepo)
	taskService := task.NewService(gormDB, taskRepo, onboardingRepo, rdb)
	userService := user.NewServiceWithOutbox(gormDB, userRepo, taskRepo, onboardingRepo, outboxRepo)
	departmentService := department.NewService(gormDB, departmentRepo, userRepo, taskRepo, onboardingRepo, rdb)
	notificationService := notification.NewService(notificationRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	onboardingHandler := onboarding.NewHandler(onboardingService)
	taskHandler := task.NewHandler(taskService)
	userHandler := user.NewHandler(userService)
	departmentHandler := department.NewHandler(departmentService)
	notificationHandler := notification.NewHandler(notificationService)
	preferencesHandler := preferences.NewHandler()

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler, rbacService, rdb)
		task.RegisterRoutes(api, taskHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService, rdb)
		onboarding.RegisterRoutes(api, onboardingHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		preferences.RegisterRoutes(api, preferencesHandler)
	}

	return nil
}
