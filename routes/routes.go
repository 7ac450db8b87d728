package routes

import (
	"os"
	"strings"

	"brando-backend/config"
	"brando-backend/controllers"
	"brando-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", controllers.GenerateInvoice)
			invoices.GET("/:invoiceNo/pdf", controllers.ServeInvoicePDF)
		}

		// History routes
		history := api.Group("/history")
		{
			history.GET("", controllers.GetHistory)
			history.GET("/export", controllers.ExportHistory)
		}

		// Load sheet routes
		loadsheets := api.Group("/loadsheets")
		{
			loadsheets.POST("", controllers.CreateLoadSheet)
			loadsheets.GET("", controllers.GetLoadSheets)
			loadsheets.GET("/:id/:format", controllers.DownloadLoadSheet)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("/password", controllers.ChangePassword)
		}

		// Admin routes
		admin := api.Group("/admin", utils.AdminMiddleware())
		{
			admin.GET("/users", controllers.GetUsers)
			admin.POST("/users", controllers.CreateUser)
			admin.PUT("/users/:username", controllers.UpdateUser)
			admin.DELETE("/users/:username", controllers.DeleteUser)
		}
	}

	return r
}
