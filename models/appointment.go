package models

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment links a client (UserID) to a veterinarian (VetID). Images is a
// JSON array of URLs already uploaded to the image host. Diagnosis,
// prescription and comments are filled by the vet around completion.
type Appointment struct {
	ID                  string            `json:"id" gorm:"primaryKey"`
	UserID              string            `json:"user_id" gorm:"index"`
	VetID               string            `json:"vet_id" gorm:"index"`
	AppointmentDatetime time.Time         `json:"appointment_datetime"`
	Status              AppointmentStatus `json:"status"`
	Reason              string            `json:"reason"`
	Images              string            `json:"images"`
	Diagnosis           string            `json:"diagnosis"`
	Prescription        string            `json:"prescription"`
	VetComments         string            `json:"vet_comments"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// TransitionTo enforces the status graph:
//
//	pending  -> approved | cancelled
//	approved -> completed | cancelled
//
// completed and cancelled are terminal.
func (a *Appointment) TransitionTo(newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if newStatus != StatusApproved && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusApproved:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from approved to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	default:
		return fmt.Errorf("unknown status %s", a.Status)
	}

	a.Status = newStatus
	return nil
}

// ValidStatus reports whether s is one of the four appointment states.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
