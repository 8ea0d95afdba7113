package storage

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sirdab/marketplace-v03-sub000/models"
)

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Ad{},
		&models.Visit{},
		&models.Booking{},
		&models.SavedProperty{},
		&models.City{},
	)
}

// seedCitiesIfEmpty loads the reference city list on first boot.
func seedCitiesIfEmpty(db *gorm.DB) {
	var count int64
	db.Model(&models.City{}).Count(&count)
	if count > 0 {
		return
	}
	cities := seedCities()
	for i := range cities {
		cities[i].ID = 0
	}
	if err := db.Create(&cities).Error; err != nil {
		log.Println("Warning: could not seed cities:", err)
	}
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	seedCitiesIfEmpty(db)
	return db
}
