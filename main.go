package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/aokimidori/kakigori-pos/config"
	"github.com/aokimidori/kakigori-pos/database"
	"github.com/aokimidori/kakigori-pos/hub"
	"github.com/aokimidori/kakigori-pos/middlewares"
	"github.com/aokimidori/kakigori-pos/models"
	"github.com/aokimidori/kakigori-pos/router"
	"github.com/aokimidori/kakigori-pos/services"
	"github.com/aokimidori/kakigori-pos/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InfoLogger = logrus.New()
	utils.ErrorLogger = logrus.New()

	utils.InfoLogger.SetOutput(os.Stdout)
	utils.ErrorLogger.SetOutput(os.Stderr)

	utils.InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
	utils.ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.SeedMenu(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed menu: %v", err)
	}

	// Rate limiter (50 requests per second per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	// Composition root: one service, one hub, injected everywhere they are
	// needed instead of living as package globals.
	orderService := services.NewOrderService(db)
	orderHub := hub.NewHub(orderService)

	r := router.SetupRouter(orderService, orderHub)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
