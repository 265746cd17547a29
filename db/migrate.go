package db

import (
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

// Migrate runs AutoMigrate for every table. It is called once from main
// during startup, never lazily on first access.
func Migrate(handle *gorm.DB) error {
	return handle.AutoMigrate(
		&models.Profile{},
		&models.VeterinarianProfile{},
		&models.Appointment{},
		&models.ScheduleEntry{},
		&models.Conversation{},
		&models.Message{},
		&models.Notification{},
	)
}
