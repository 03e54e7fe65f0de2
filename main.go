package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/yeremiapane/table-order-app/config"
	"github.com/yeremiapane/table-order-app/models"
	"github.com/yeremiapane/table-order-app/router"
	"github.com/yeremiapane/table-order-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Table{},
		&models.TableSession{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
