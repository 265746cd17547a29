package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

// AdminService performs role-gated moderation. Every mutation re-reads the
// actor's profile and requires the admin role before touching anything else.
type AdminService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewAdminService(db *gorm.DB, log *logrus.Logger) *AdminService {
	return &AdminService{db: db, log: log}
}

func (s *AdminService) requireAdmin(actorID string) error {
	var actor models.Profile
	if err := s.db.First(&actor, "id = ?", actorID).Error; err != nil {
		return ErrUnauthorized
	}
	if actor.Role != models.RoleAdmin {
		return ErrUnauthorized
	}
	return nil
}

// Suspend sets the user's role to suspended. The row stays; suspension is a
// role value, not a deletion.
func (s *AdminService) Suspend(actorID, userID string) (*models.Profile, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	return s.setRole(userID, models.RoleSuspended)
}

// Activate restores a suspended account to the default client role.
func (s *AdminService) Activate(actorID, userID string) (*models.Profile, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	return s.setRole(userID, models.RoleClient)
}

// SetVetVerification marks a veterinarian verified or rejected.
func (s *AdminService) SetVetVerification(actorID, vetID string, status models.VerificationStatus) (*models.Profile, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	if status != models.VerificationVerified && status != models.VerificationRejected {
		return nil, fmt.Errorf("%w: status must be verified or rejected", ErrValidation)
	}

	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", vetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.db.Model(&models.VeterinarianProfile{}).
		Where("profile_id = ?", vetID).
		Update("verification_status", status).Error; err != nil {
		s.log.Warnf("failed to update verification status: %v", err)
		return nil, err
	}
	return &profile, nil
}

func (s *AdminService) setRole(userID string, role models.Role) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	profile.Role = role
	if err := s.db.Save(&profile).Error; err != nil {
		s.log.Warnf("failed to update role for %s: %v", userID, err)
		return nil, err
	}
	return &profile, nil
}
