package main

import (
	"fmt"
	"log"
	"os"

	"brando-backend/config"
	"brando-backend/models"
	"brando-backend/routes"
	"brando-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Invoice{},
		&models.LoadSheet{},
	)

	if err := services.NewUserService(config.DB).Bootstrap(); err != nil {
		log.Fatalf("Failed to bootstrap user store: %v", err)
	}
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.StartRetentionScheduler(config.DB)

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
