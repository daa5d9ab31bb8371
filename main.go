package main

import (
	"context"
	"log"
	"os"

	"github.com/FarHanZzzz/Supply-chain-main-sub000/config"
	"github.com/FarHanZzzz/Supply-chain-main-sub000/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Connect to PostgreSQL database
	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Set the global DB in the config package and migrate models
	config.DB = db
	controllers.MigrateModels(db)

	// Optional redis for alert dedup and pub/sub fan-out
	if err := config.InitRedis(context.Background()); err != nil {
		log.Fatal("Failed to connect to redis: ", err)
	}

	// Set up Gin router with CORS configuration
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", controllers.HealthCheck)
	r.GET("/ws", controllers.HandleWebSocket)

	// Monitoring views
	r.GET("/monitoring", controllers.GetMonitoringView)
	r.GET("/alerts", controllers.GetCriticalAlerts)
	r.GET("/rollups", controllers.GetTransportRollups)
	r.GET("/history/:transport_id", controllers.GetSensorHistory)

	// Reading write path
	r.POST("/sensor-data", controllers.ReceiveReading)
	r.PUT("/readings/:id", controllers.UpdateReading)
	r.DELETE("/readings/:id", controllers.DeleteReading)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
