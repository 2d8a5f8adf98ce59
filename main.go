package main

import (
	"fmt"
	"log"

	"carlach-backend/config"
	"carlach-backend/controllers"
	"carlach-backend/routes"
	"carlach-backend/services"
	"carlach-backend/storage"
	"carlach-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.LoadConfig()
	utils.InitializeLogger()
}

func main() {
	logger := utils.GetLogger()
	defer logger.Sync()

	repo, err := storage.Open(config.AppConfig)
	if err != nil {
		logger.Fatal("failed to open storage backend", zap.Error(err))
	}
	logger.Info("storage backend ready", zap.String("backend", config.AppConfig.StorageBackend))

	notifier := services.NewNotifier(config.AppConfig)
	bookings := services.NewBookingService(repo)
	statuses := services.NewStatusManager(repo, notifier)
	controllers.Setup(bookings, statuses, notifier)

	reminders := services.NewReminderService(repo, notifier)
	reminders.StartScheduler()
	defer reminders.Stop()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := routes.SetupRouter()
	printRoutes(r)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
