package routes

import (
	"os"
	"strings"

	"slotwise-backend/config"
	"slotwise-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Controllers bundles every handler the router mounts.
type Controllers struct {
	Businesses    *controllers.BusinessController
	Services      *controllers.ServiceController
	Professionals *controllers.ProfessionalController
	Rules         *controllers.RuleController
	Availability  *controllers.AvailabilityController
	Bookings      *controllers.BookingController
	Chat          *controllers.ChatController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		businesses := api.Group("/businesses")
		{
			businesses.GET("", ctrl.Businesses.GetBusinesses)
			businesses.POST("", ctrl.Businesses.CreateBusiness)
		}

		services := api.Group("/services")
		{
			services.GET("", ctrl.Services.GetServices)
			services.POST("", ctrl.Services.CreateService)
		}

		professionals := api.Group("/professionals")
		{
			professionals.GET("", ctrl.Professionals.GetProfessionals)
			professionals.POST("", ctrl.Professionals.CreateProfessional)
			professionals.POST("/:id/services", ctrl.Professionals.AssignService)

			professionals.GET("/:id/rules", ctrl.Rules.GetRules)
			professionals.POST("/:id/rules", ctrl.Rules.CreateRule)
			professionals.GET("/:id/exceptions", ctrl.Rules.GetExceptions)
			professionals.POST("/:id/exceptions", ctrl.Rules.CreateException)
		}

		api.GET("/availability", ctrl.Availability.GetAvailability)

		bookings := api.Group("/bookings")
		{
			bookings.GET("", ctrl.Bookings.GetBookings)
			bookings.POST("", ctrl.Bookings.CreateBooking)
			bookings.DELETE("/:id", ctrl.Bookings.CancelBooking)
		}

		api.POST("/chat", ctrl.Chat.HandleMessage)
	}

	return r
}
