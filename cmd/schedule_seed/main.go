// Command schedule_seed loads the statutory prescribed-activity fee schedule
// into the system of record and creates the bootstrap admin account.
package main

import (
	"log"
	"os"

	"permitdesk/internal/config"
	"permitdesk/internal/models"
	"permitdesk/internal/repositories"
	"permitdesk/internal/services/fee"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// prescribedActivities is the statutory fee schedule shipped with the
// platform. Fees are annual recurrent amounts in the platform currency.
var prescribedActivities = []models.PrescribedActivity{
	{
		PrescribedActivityID: "PA-0101",
		ActivityLevel:        "2.1",
		ActivityType:         "Waste Management",
		ActivitySubCategory:  "Transfer Station",
		PermitTypeID:         "PT-WST",
		PermitTypeName:       "Waste Permit",
		AnnualRecurrentFee:   decimal.RequireFromString("18250.00"),
	},
	{
		PrescribedActivityID: "PA-0102",
		ActivityLevel:        "2.2",
		ActivityType:         "Waste Management",
		ActivitySubCategory:  "Landfill",
		PermitTypeID:         "PT-WST",
		PermitTypeName:       "Waste Permit",
		AnnualRecurrentFee:   decimal.RequireFromString("36500.00"),
	},
	{
		PrescribedActivityID: "PA-0201",
		ActivityLevel:        "2.1",
		ActivityType:         "Air Emissions",
		ActivitySubCategory:  "Minor Source",
		PermitTypeID:         fee.EnvironmentalPermitTypeID,
		PermitTypeName:       fee.EnvironmentalPermitName,
		AnnualRecurrentFee:   decimal.RequireFromString("21900.00"),
	},
	{
		PrescribedActivityID: "PA-0202",
		ActivityLevel:        "2.3",
		ActivityType:         "Air Emissions",
		ActivitySubCategory:  "Major Source",
		PermitTypeID:         fee.EnvironmentalPermitTypeID,
		PermitTypeName:       fee.EnvironmentalPermitName,
		AnnualRecurrentFee:   decimal.RequireFromString("54750.00"),
	},
	{
		PrescribedActivityID: "PA-0301",
		ActivityLevel:        "2.4",
		ActivityType:         "Water Discharge",
		ActivitySubCategory:  "Industrial Effluent",
		PermitTypeID:         "PT-WTR",
		PermitTypeName:       "Water Permit",
		AnnualRecurrentFee:   decimal.RequireFromString("43800.00"),
	},
	{
		PrescribedActivityID: "PA-0401",
		ActivityLevel:        "3",
		ActivityType:         "Hazardous Substances",
		ActivitySubCategory:  "Storage and Handling",
		PermitTypeID:         fee.EnvironmentalPermitTypeID,
		PermitTypeName:       fee.EnvironmentalPermitName,
		AnnualRecurrentFee:   decimal.RequireFromString("73000.00"),
	},
}

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			sqlDB.Close()
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	seedSchedules()
	seedAdmin()
}

func seedSchedules() {
	for _, activity := range prescribedActivities {
		var existing models.PrescribedActivity
		result := repositories.DB.Where("prescribed_activity_id = ?", activity.PrescribedActivityID).First(&existing)
		if result.Error == nil {
			continue
		}
		if err := repositories.DB.Create(&activity).Error; err != nil {
			log.Fatalf("Failed to seed schedule %s: %v", activity.PrescribedActivityID, err)
		}
		log.Printf("Seeded fee schedule %s (%s)", activity.PrescribedActivityID, activity.PermitTypeName)
	}
}

func seedAdmin() {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	var existing models.User
	if err := repositories.DB.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Email:        adminEmail,
		Password:     string(hashedPassword),
		Name:         "Administrator",
		Role:         "admin",
		TokenVersion: 1,
	}
	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Println("Admin account created")
}
