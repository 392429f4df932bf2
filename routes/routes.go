package routes

import (
	"EAsha/cache"
	"EAsha/config"
	"EAsha/controllers"
	"EAsha/database"
	"EAsha/handlers"
	"EAsha/llm"
	"EAsha/middlewares"
	"EAsha/models"
	"EAsha/repositories"
	"EAsha/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the text tables, repositories, services, and handlers
// into a gin router.
func SetupRoutes(cache *cache.Cache, config *config.AppConfig) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Storage: three delimited-text tables under DataDir.
	usersTable := database.NewTable(config.UsersFile(), models.AccountColumns, true)
	adminTable := database.NewTable(config.AdminFile(), models.AccountColumns, true)
	reportsTable := database.NewTable(config.ReportsFile(), models.ReportColumns, false)

	workerRepo := repositories.NewWorkerRepository(usersTable, cache)
	adminRepo := repositories.NewAdminRepository(adminTable)
	reportRepo := repositories.NewReportRepository(reportsTable)

	authService := services.NewAuthService(workerRepo, adminRepo)
	visitService := services.NewVisitService(reportRepo)
	reportService := services.NewReportService(reportRepo, workerRepo)
	workerService := services.NewWorkerService(workerRepo)
	chatService := services.NewChatService(llm.NewGroqClient())

	authHandler := handlers.NewAuthHandler(authService)
	visitHandler := handlers.NewVisitHandler(visitService)
	reportHandler := handlers.NewReportHandler(reportService)
	workerHandler := handlers.NewWorkerHandler(workerService, config.UploadDir)
	chatHandler := handlers.NewChatHandler(chatService)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupWorkerRoutes(router, visitHandler, reportHandler, authHandler, chatHandler)
	controllers.SetupAdminRoutes(router, workerHandler, reportHandler, authHandler)
	controllers.SetupRootRoutes(router)

	return router
}
