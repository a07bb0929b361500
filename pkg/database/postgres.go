package database

import (
	"log"
	"os"

	"github.com/selimacar/studiofoto-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Package{},
		&models.Booking{},
		&models.Album{},
		&models.Photo{},
		&models.Favorite{},
	)
	if err != nil {
		return err
	}

	// Başlangıç paketleri
	packages := []models.Package{
		{
			Name:        "Mini Session",
			Description: "30 minute session, one location, 10 edited photos",
			Category:    "portrait",
			Price:       149.00,
			Duration:    "30 minutes",
			Features:    []string{"1 location", "10 edited photos", "Online gallery"},
			Tags:        []string{"portrait", "mini", "outdoor"},
			IsActive:    true,
		},
		{
			Name:        "Family Portrait Package",
			Description: "90 minute session for up to 6 people, 30 edited photos",
			Category:    "portrait",
			Price:       349.00,
			Duration:    "90 minutes",
			Features:    []string{"Up to 6 people", "30 edited photos", "Online gallery", "Print release"},
			Tags:        []string{"portrait", "family", "studio"},
			Popular:     true,
			IsActive:    true,
		},
		{
			Name:        "Graduation Package",
			Description: "60 minute session on campus or in studio, 20 edited photos",
			Category:    "portrait",
			Price:       249.00,
			Duration:    "60 minutes",
			Features:    []string{"Cap and gown", "20 edited photos", "Online gallery"},
			Tags:        []string{"portrait", "graduation", "campus"},
			IsActive:    true,
		},
		{
			Name:        "Wedding Essentials",
			Description: "6 hours of coverage, two photographers, 300+ edited photos",
			Category:    "wedding",
			Price:       1899.00,
			Duration:    "6 hours",
			Features:    []string{"2 photographers", "300+ edited photos", "Online gallery", "USB delivery"},
			Tags:        []string{"wedding", "ceremony", "reception"},
			IsActive:    true,
		},
	}

	// Paketleri veritabanına ekle (eğer yoksa)
	for _, pkg := range packages {
		var count int64
		db.Model(&models.Package{}).Where("name = ?", pkg.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&pkg).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
