package services

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ScheduleService manages the weekly availability windows of a veterinarian.
// Updates are full-replace: the stored set is deleted and the submitted set
// reinserted inside one transaction.
type ScheduleService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewScheduleService(db *gorm.DB, log *logrus.Logger) *ScheduleService {
	return &ScheduleService{db: db, log: log}
}

type ScheduleEntryInput struct {
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

// Get returns the vet's schedule ordered by day of week, empty when unset.
func (s *ScheduleService) Get(vetID string) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	if err := s.db.
		Where("vet_id = ?", vetID).
		Order("day_of_week asc").
		Find(&entries).Error; err != nil {
		s.log.Warnf("failed to get schedule for vet %s: %v", vetID, err)
		return nil, err
	}
	return entries, nil
}

// ReplaceAll validates every entry up front and then swaps the stored set in
// one transaction. A failed call leaves the prior schedule untouched.
func (s *ScheduleService) ReplaceAll(vetID string, entries []ScheduleEntryInput) ([]models.ScheduleEntry, error) {
	if vetID == "" {
		return nil, fmt.Errorf("%w: veterinarian id is required", ErrValidation)
	}
	for _, e := range entries {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: day_of_week must be between 0 and 6", ErrValidation)
		}
		if !timePattern.MatchString(e.StartTime) || !timePattern.MatchString(e.EndTime) {
			return nil, fmt.Errorf("%w: time format must be HH:MM (24-hour format)", ErrValidation)
		}
	}

	tx := s.db.Begin()
	defer tx.Rollback()

	if err := tx.Where("vet_id = ?", vetID).Delete(&models.ScheduleEntry{}).Error; err != nil {
		s.log.Warnf("failed to clear schedule for vet %s: %v", vetID, err)
		return nil, err
	}
	for _, e := range entries {
		entry := models.ScheduleEntry{
			ID:          uuid.NewString(),
			VetID:       vetID,
			DayOfWeek:   e.DayOfWeek,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			IsAvailable: e.IsAvailable,
		}
		if err := tx.Create(&entry).Error; err != nil {
			s.log.Warnf("failed to insert schedule entry for vet %s: %v", vetID, err)
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.Get(vetID)
}
