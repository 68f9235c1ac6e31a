package migrations

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lunch_manager/internal/models"
)

// RunMigrations runs all database migrations and creates default data
func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.MenuItem{},
		&models.Order{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultAdmin(db); err != nil {
		logrus.Warnf("Failed to create default admin: %v", err)
	}

	logrus.Info("Database migrations completed successfully!")
	return nil
}

func createDefaultAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", "admin@lunch.local").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{Email: "admin@lunch.local", Password: string(hash)}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		profile := models.Profile{
			ID:          admin.ID,
			FirstName:   "Admin",
			LastName:    "User",
			CompanyName: models.DefaultCompanyName,
			IsAdmin:     true,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		logrus.Info("Default admin user created (admin@lunch.local / admin123)")
		return nil
	})
}
