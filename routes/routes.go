package routes

import (
	"net/http"
	"time"

	"carlach-backend/controllers"
	"carlach-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.HandleMethodNotAllowed = true

	// The booking form is embedded on the public site, so the API is open to
	// any origin.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	r.Use(utils.PerformanceLogger())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "timestamp": time.Now().Format(time.RFC3339)})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Public: the booking form lists the book to grey out taken slots.
		api.GET("/appointments", controllers.GetAppointments)
		api.POST("/appointments", controllers.CreateAppointment)
		api.GET("/availability", controllers.GetAvailability)
		api.GET("/services", controllers.GetServiceCatalog)

		// Staff-only dashboard actions.
		staff := api.Group("")
		staff.Use(utils.AuthMiddleware())
		{
			staff.DELETE("/appointments", controllers.DeleteAppointment)
			staff.PATCH("/appointments", controllers.UpdateAppointmentStatus)
			staff.GET("/dashboard", controllers.GetDashboardOverview)
			staff.GET("/notifications", controllers.GetNotifications)
		}
	}

	return r
}
