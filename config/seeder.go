package config

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"inventory_backend/models"
	"inventory_backend/utils"
)

func SeedAdmin(db *gorm.DB) {
	log.Println("Seeding admin user...")

	password, _ := utils.HashPassword("admin123")

	admin := models.User{
		Name:     "Administrator",
		Email:    "admin@example.com",
		Password: password,
		Role:     models.RoleAdmin,
	}

	var existing models.User
	if err := db.Where("email = ?", admin.Email).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("Failed to seed admin %s: %v", admin.Email, err)
			} else {
				log.Printf("Admin seeded: %s (ID: %d)", admin.Email, admin.ID)
			}
		}
	} else {
		log.Printf("Admin already exists: %s", admin.Email)
	}
}

func SeedProducts(db *gorm.DB) {
	log.Println("Seeding products...")

	products := []models.Product{
		{
			Name:        "Wireless Mouse",
			Price:       decimal.NewFromFloat(24.99),
			Description: "2.4GHz wireless optical mouse",
			Image:       "/uploads/products/sample-mouse.jpg",
			Stock:       40,
			Category:    "electronics",
		},
		{
			Name:        "Mechanical Keyboard",
			Price:       decimal.NewFromFloat(89.90),
			Description: "Tenkeyless board with brown switches",
			Image:       "/uploads/products/sample-keyboard.jpg",
			Stock:       3,
			Category:    "electronics",
		},
		{
			Name:        "Desk Lamp",
			Price:       decimal.NewFromFloat(19.50),
			Description: "LED lamp with adjustable arm",
			Image:       "/uploads/products/sample-lamp.jpg",
			Stock:       12,
			Category:    "home",
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := db.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&product).Error; err != nil {
					log.Printf("Failed to seed product %s: %v", product.Name, err)
				} else {
					log.Printf("Product seeded: %s (ID: %d)", product.Name, product.ID)
				}
			}
		} else {
			log.Printf("Product already exists: %s", product.Name)
		}
	}

	log.Println("Seeding complete.")
}
