package services

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/agropetvet/vetcare-app/models"
)

// testDB opens a fresh in-memory SQLite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	handle, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := handle.AutoMigrate(
		&models.Profile{},
		&models.VeterinarianProfile{},
		&models.Appointment{},
		&models.ScheduleEntry{},
		&models.Conversation{},
		&models.Message{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return handle
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// seedProfile inserts a bare profile row with the given role.
func seedProfile(t *testing.T, db *gorm.DB, id string, role models.Role) *models.Profile {
	t.Helper()
	profile := &models.Profile{ID: id, Email: id, Name: id, Role: role}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to seed profile %s: %v", id, err)
	}
	if role == models.RoleVeterinarian {
		vet := &models.VeterinarianProfile{ProfileID: id, VerificationStatus: models.VerificationPending}
		if err := db.Create(vet).Error; err != nil {
			t.Fatalf("failed to seed veterinarian profile %s: %v", id, err)
		}
	}
	return profile
}
