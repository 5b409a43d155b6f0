package seeders

import (
	"errors"
	"os"

	"booking-registry/constants"
	"booking-registry/logger"
	"booking-registry/models/settings"
	"booking-registry/models/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the singleton settings and serial counter rows if they are
// missing, and provisions the bootstrap admin when configured. Safe to run
// on every startup.
func Seed(db *gorm.DB) error {
	if err := seedSettings(db); err != nil {
		return err
	}
	if err := seedSerialCounter(db); err != nil {
		return err
	}
	return seedBootstrapAdmin(db)
}

func seedSettings(db *gorm.DB) error {
	var s settings.Settings
	err := db.First(&s, settings.SettingsID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	s = settings.Settings{
		ID:                     settings.SettingsID,
		AllowSelfSignup:        false,
		SerialPrefix:           "LUBC-",
		DefaultProjectLocation: "Ranchi, Jharkhand",
	}
	if err := db.Create(&s).Error; err != nil {
		return err
	}
	logger.Success("Seeded default settings")
	return nil
}

func seedSerialCounter(db *gorm.DB) error {
	var c settings.SerialCounter
	err := db.First(&c, settings.CounterID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	c = settings.SerialCounter{ID: settings.CounterID, LastValue: 0}
	if err := db.Create(&c).Error; err != nil {
		return err
	}
	logger.Success("Seeded serial counter")
	return nil
}

// seedBootstrapAdmin provisions the initial admin from explicit out-of-band
// configuration. Nothing happens unless both env vars are set.
func seedBootstrapAdmin(db *gorm.DB) error {
	email := os.Getenv("BOOTSTRAP_ADMIN_EMAIL")
	password := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var existing user.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := user.User{
		Uuid:         uuid.NewString(),
		FullName:     "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Success("Seeded bootstrap admin " + email)
	return nil
}
