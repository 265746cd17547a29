package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

// AppointmentService is the lifecycle engine. Clients create appointments;
// only the assigned veterinarian may move them through the status graph or
// fill the outcome fields.
type AppointmentService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewAppointmentService(db *gorm.DB, log *logrus.Logger) *AppointmentService {
	return &AppointmentService{db: db, log: log}
}

type CreateAppointmentInput struct {
	UserID              string
	VetID               string
	AppointmentDatetime time.Time
	Reason              string
	ImageURLs           []string
	// Status overrides the initial state for data seeding only; the normal
	// path always starts pending.
	Status models.AppointmentStatus
}

// Create books an appointment on behalf of actorID, which must match the
// client id in the input: nobody books for someone else.
func (s *AppointmentService) Create(actorID string, in CreateAppointmentInput) (*models.Appointment, error) {
	if in.UserID == "" || in.VetID == "" || in.AppointmentDatetime.IsZero() {
		return nil, fmt.Errorf("%w: user_id, vet_id and appointment_datetime are required", ErrValidation)
	}
	if in.UserID != actorID {
		return nil, ErrUnauthorized
	}

	status := in.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	images := ""
	if len(in.ImageURLs) > 0 {
		raw, err := json.Marshal(in.ImageURLs)
		if err != nil {
			return nil, err
		}
		images = string(raw)
	}

	appointment := &models.Appointment{
		ID:                  uuid.NewString(),
		UserID:              in.UserID,
		VetID:               in.VetID,
		AppointmentDatetime: in.AppointmentDatetime,
		Status:              status,
		Reason:              in.Reason,
		Images:              images,
	}
	if err := s.db.Create(appointment).Error; err != nil {
		s.log.Warnf("failed to create appointment: %v", err)
		return nil, err
	}
	return appointment, nil
}

// GetByID returns the appointment when the actor is the client or the vet.
func (s *AppointmentService) GetByID(actorID, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if appointment.UserID != actorID && appointment.VetID != actorID {
		return nil, ErrUnauthorized
	}
	return &appointment, nil
}

// Transition moves the appointment along the status graph. Only the assigned
// veterinarian may change status, cancellation included.
func (s *AppointmentService) Transition(actorID, id string, newStatus models.AppointmentStatus) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if appointment.VetID != actorID {
		return nil, ErrUnauthorized
	}
	if !models.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, newStatus)
	}
	if err := appointment.TransitionTo(newStatus); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	if err := s.db.Save(&appointment).Error; err != nil {
		s.log.Warnf("failed to save appointment status: %v", err)
		return nil, err
	}
	return &appointment, nil
}

// OutcomeInput is a partial update; nil fields stay untouched.
type OutcomeInput struct {
	Diagnosis           *string
	Prescription        *string
	VetComments         *string
	AppointmentDatetime *time.Time
}

// SetOutcome lets the assigned veterinarian fill outcome fields without
// forcing a status change. Compose with Transition, or use
// CompleteWithOutcome for the atomic pair.
func (s *AppointmentService) SetOutcome(actorID, id string, in OutcomeInput) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if appointment.VetID != actorID {
		return nil, ErrUnauthorized
	}

	applyOutcome(&appointment, in)
	if err := s.db.Save(&appointment).Error; err != nil {
		s.log.Warnf("failed to save appointment outcome: %v", err)
		return nil, err
	}
	return &appointment, nil
}

// CompleteWithOutcome writes the outcome fields and the approved→completed
// transition as one transaction: either both land or neither does.
func (s *AppointmentService) CompleteWithOutcome(actorID, id string, in OutcomeInput) (*models.Appointment, error) {
	var appointment models.Appointment

	tx := s.db.Begin()
	defer tx.Rollback()

	if err := tx.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if appointment.VetID != actorID {
		return nil, ErrUnauthorized
	}
	applyOutcome(&appointment, in)
	if err := appointment.TransitionTo(models.StatusCompleted); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	if err := tx.Save(&appointment).Error; err != nil {
		s.log.Warnf("failed to complete appointment: %v", err)
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func applyOutcome(a *models.Appointment, in OutcomeInput) {
	if in.Diagnosis != nil {
		a.Diagnosis = *in.Diagnosis
	}
	if in.Prescription != nil {
		a.Prescription = *in.Prescription
	}
	if in.VetComments != nil {
		a.VetComments = *in.VetComments
	}
	if in.AppointmentDatetime != nil {
		a.AppointmentDatetime = *in.AppointmentDatetime
	}
}

// AppointmentWithCounterpart is the read-side view for listings: the row
// plus the other party's display name and photo.
type AppointmentWithCounterpart struct {
	models.Appointment
	CounterpartName  string `json:"counterpart_name"`
	CounterpartPhoto string `json:"counterpart_photo"`
}

// ListForUser returns every appointment where the user is the client or the
// vet, newest datetime first, enriched with the counterpart's profile.
func (s *AppointmentService) ListForUser(userID string) ([]AppointmentWithCounterpart, error) {
	var appointments []models.Appointment
	if err := s.db.
		Where("user_id = ? OR vet_id = ?", userID, userID).
		Order("appointment_datetime desc").
		Find(&appointments).Error; err != nil {
		s.log.Warnf("failed to list appointments: %v", err)
		return nil, err
	}

	ids := make([]string, 0, len(appointments))
	for _, a := range appointments {
		if a.UserID == userID {
			ids = append(ids, a.VetID)
		} else {
			ids = append(ids, a.UserID)
		}
	}

	profiles := map[string]models.Profile{}
	if len(ids) > 0 {
		var rows []models.Profile
		if err := s.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
			s.log.Warnf("failed to load counterpart profiles: %v", err)
			return nil, err
		}
		for _, p := range rows {
			profiles[p.ID] = p
		}
	}

	result := make([]AppointmentWithCounterpart, 0, len(appointments))
	for _, a := range appointments {
		counterpartID := a.VetID
		if a.UserID != userID {
			counterpartID = a.UserID
		}
		enriched := AppointmentWithCounterpart{Appointment: a}
		if p, ok := profiles[counterpartID]; ok {
			enriched.CounterpartName = p.Name
			enriched.CounterpartPhoto = p.ProfilePhoto
		}
		result = append(result, enriched)
	}
	return result, nil
}
