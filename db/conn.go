// Package db opens the configured database and prepares the schema
package db

import (
	"fmt"

	"jobtrack/tracker-api/config"
	"jobtrack/tracker-api/internal/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	dsn := viper.GetString("db.dsn")

	switch viper.GetString("db.driver") {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = db.AutoMigrate(
		model.User{},
		model.EmploymentType{},
		model.WorkArrangement{},
		model.JobApplicationStatus{},
		model.JobApplication{},
		model.Reminder{},
		model.VerificationCode{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	if config.SeedLookups() {
		if err := Seed(db); err != nil {
			return nil, fmt.Errorf("failed to seed lookup tables, %w", err)
		}
	}

	return db, nil
}

// Seed fills the lookup tables when they're empty. Labels match what the
// frontend offers in its dropdowns
func Seed(db *gorm.DB) error {
	var count int64

	if err := db.Model(model.EmploymentType{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		types := []model.EmploymentType{
			{Label: "Full-Time", Description: "Standard full-time employment"},
			{Label: "Part-Time", Description: "Part-time employment"},
			{Label: "Contract", Description: "Fixed-term contract work"},
			{Label: "Internship", Description: "Internship or trainee position"},
			{Label: "Freelance", Description: "Independent freelance work"},
		}
		if err := db.Create(&types).Error; err != nil {
			return err
		}
	}

	if err := db.Model(model.WorkArrangement{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		arrangements := []model.WorkArrangement{
			{Label: "On-Site", Description: "Work from the office"},
			{Label: "Remote", Description: "Work from anywhere"},
			{Label: "Hybrid", Description: "Mix of office and remote"},
		}
		if err := db.Create(&arrangements).Error; err != nil {
			return err
		}
	}

	if err := db.Model(model.JobApplicationStatus{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		statuses := []model.JobApplicationStatus{
			{Label: "Applied", Description: "Application submitted"},
			{Label: "Interviewing", Description: "Interview process ongoing"},
			{Label: "Offered", Description: "Offer received"},
			{Label: "Rejected", Description: "Application rejected"},
			{Label: "Ghosted", Description: "No response from the company"},
			{Label: "Withdrawn", Description: "Application withdrawn"},
		}
		if err := db.Create(&statuses).Error; err != nil {
			return err
		}
	}

	return nil
}
