package main

import (
	"fmt"
	"os"
	"time"

	"slotwise-backend/config"
	"slotwise-backend/controllers"
	"slotwise-backend/models"
	"slotwise-backend/repository"
	"slotwise-backend/routes"
	"slotwise-backend/services"
	"slotwise-backend/services/availability"
	"slotwise-backend/services/chat"
	"slotwise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Business{},
		&models.Service{},
		&models.Professional{},
		&models.AvailabilityRule{},
		&models.AvailabilityException{},
		&models.Booking{},
	); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	businessRepo := repository.NewBusinessRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	professionalRepo := repository.NewProfessionalRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	engine := availability.NewEngine(serviceRepo, ruleRepo, bookingRepo, logger)
	bookingService := services.NewBookingService(db, serviceRepo, logger)

	redisClient := config.ConnectRedis()
	sessions := chat.NewRedisSessionStore(redisClient, 30*time.Minute)

	var extractor chat.IntentExtractor
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		extractor, err = chat.NewGeminiExtractor(apiKey)
		if err != nil {
			logger.Fatal("gemini client failed", zap.Error(err))
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, using keyword intent extraction")
		extractor = chat.NewKeywordExtractor()
	}
	chatService := chat.NewChatService(
		extractor, sessions, serviceRepo, professionalRepo, engine, bookingService, logger)

	completion := services.NewCompletionService(db)
	completion.StartScheduler()

	r := routes.SetupRouter(routes.Controllers{
		Businesses:    &controllers.BusinessController{Repo: businessRepo},
		Services:      &controllers.ServiceController{Repo: serviceRepo},
		Professionals: &controllers.ProfessionalController{Repo: professionalRepo},
		Rules:         &controllers.RuleController{Repo: ruleRepo, Professionals: professionalRepo},
		Availability:  &controllers.AvailabilityController{Engine: engine},
		Bookings:      &controllers.BookingController{Service: bookingService, Repo: bookingRepo},
		Chat:          &controllers.ChatController{Service: chatService},
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
