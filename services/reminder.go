package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

// Mailer sends a best-effort notification mail. Nil disables mail entirely.
type Mailer interface {
	Send(to, subject, body string) error
}

// ReminderService sweeps tomorrow's approved appointments and writes a
// notification row for each party. The sweep is idempotency-unaware: running
// it twice duplicates reminders.
type ReminderService struct {
	db     *gorm.DB
	log    *logrus.Logger
	mailer Mailer
}

func NewReminderService(db *gorm.DB, log *logrus.Logger, mailer Mailer) *ReminderService {
	return &ReminderService{db: db, log: log, mailer: mailer}
}

// SweepTomorrow scans approved appointments in tomorrow's calendar window
// and returns how many appointments were reminded.
func (s *ReminderService) SweepTomorrow() (int, error) {
	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)
	windowStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := windowStart.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.
		Where("status = ?", models.StatusApproved).
		Where("appointment_datetime >= ? AND appointment_datetime < ?", windowStart, windowEnd).
		Find(&appointments).Error; err != nil {
		s.log.Warnf("failed to fetch appointments for reminders: %v", err)
		return 0, err
	}

	for _, appointment := range appointments {
		when := appointment.AppointmentDatetime.Format("2006-01-02 15:04")

		clientName := "a client"
		var client models.Profile
		if err := s.db.First(&client, "id = ?", appointment.UserID).Error; err == nil && client.Name != "" {
			clientName = client.Name
		}

		s.notify(appointment.UserID,
			fmt.Sprintf("You have an appointment tomorrow at %s.", when))
		s.notify(appointment.VetID,
			fmt.Sprintf("You have an appointment tomorrow with %s at %s.", clientName, when))
	}
	return len(appointments), nil
}

func (s *ReminderService) notify(userID, message string) {
	notification := models.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   "Appointment Reminder",
		Message: message,
		Type:    models.NotificationTypeReminder,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		s.log.Warnf("failed to create reminder notification for %s: %v", userID, err)
		return
	}

	if s.mailer != nil {
		body := fmt.Sprintf("<p>%s</p><p>Best regards,<br>The AgroPetVet Team</p>", message)
		if err := s.mailer.Send(userID, "Appointment Reminder", body); err != nil {
			s.log.Warnf("failed to send reminder mail to %s: %v", userID, err)
		}
	}
}

// ListNotifications returns the user's notifications, newest first.
func (s *ReminderService) ListNotifications(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		s.log.Warnf("failed to list notifications: %v", err)
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead flags one of the user's notifications as read.
func (s *ReminderService) MarkNotificationRead(userID, notificationID string) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		s.log.Warnf("failed to mark notification read: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
