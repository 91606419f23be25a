// Command admin_seed bootstraps a fresh deployment: the admin account, the
// default currency, the built-in payment gateways, and the platform setting
// that picks the default currency.
package main

import (
	"log"
	"os"

	"equifund/internal/config"
	"equifund/internal/models"
	"equifund/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	var existingAdmin models.User
	if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err == nil {
		log.Println("Admin user already exists")
	} else {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		adminUser := models.User{
			Email:     adminEmail,
			Password:  string(hashedPassword),
			FirstName: "Platform",
			LastName:  "Admin",
			Role:      models.RoleAdmin,
		}
		if err := db.Create(&adminUser).Error; err != nil {
			log.Fatal("Failed to create admin user:", err)
		}
		log.Println("Admin account created")
	}

	currency := models.Currency{Code: "USD", Symbol: "$"}
	if err := db.Where("code = ?", currency.Code).FirstOrCreate(&currency).Error; err != nil {
		log.Fatal("Failed to seed default currency:", err)
	}

	gateways := []models.PaymentGateway{
		{
			Title:       "Wire Transfer",
			PaymentType: models.GatewayTypeOffline,
		},
		{
			Title:       "ACH",
			PaymentType: models.GatewayTypeACH,
			GatewayFee:  decimal.NewFromInt(1),
		},
	}
	for i := range gateways {
		if err := db.Where("title = ?", gateways[i].Title).FirstOrCreate(&gateways[i]).Error; err != nil {
			log.Fatal("Failed to seed payment gateway:", err)
		}
	}

	var setting models.PlatformSetting
	if err := db.First(&setting).Error; err != nil {
		setting = models.PlatformSetting{
			SiteName:   config.GetEnv("SITE_NAME", "EquiFund"),
			CurrencyID: currency.ID,
		}
		if err := db.Create(&setting).Error; err != nil {
			log.Fatal("Failed to seed platform settings:", err)
		}
	}

	log.Println("Seed complete")
}
