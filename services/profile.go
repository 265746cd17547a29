package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

// ProfileService covers self-service profile edits and the public
// veterinarian directory.
type ProfileService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewProfileService(db *gorm.DB, log *logrus.Logger) *ProfileService {
	return &ProfileService{db: db, log: log}
}

// ProfileUpdateInput is a partial update; nil fields stay untouched.
// Vet-only fields are ignored for non-veterinarian accounts.
type ProfileUpdateInput struct {
	Name           *string `json:"name"`
	Location       *string `json:"location"`
	Specialization *string `json:"specialization"`
	Qualifications *string `json:"qualifications"`
	ServiceRegions *string `json:"service_regions"`
}

// VeterinarianListing is a directory row: the account header plus the vet
// payload.
type VeterinarianListing struct {
	models.Profile
	Vet models.VeterinarianProfile `json:"veterinarian"`
}

// GetByID returns the profile, with the vet payload attached for
// veterinarian accounts.
func (s *ProfileService) GetByID(id string) (*VeterinarianListing, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	listing := &VeterinarianListing{Profile: profile}
	if profile.Role == models.RoleVeterinarian {
		if err := s.db.First(&listing.Vet, "profile_id = ?", id).Error; err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return listing, nil
}

// Update applies a self-service edit. Only the owner may update a profile.
func (s *ProfileService) Update(actorID, id string, in ProfileUpdateInput) (*VeterinarianListing, error) {
	if actorID != id {
		return nil, ErrUnauthorized
	}

	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		profile.Name = *in.Name
		if err := s.db.Save(&profile).Error; err != nil {
			s.log.Warnf("failed to update profile %s: %v", id, err)
			return nil, err
		}
	}

	if profile.Role == models.RoleVeterinarian {
		updates := map[string]interface{}{}
		if in.Location != nil {
			updates["location"] = *in.Location
		}
		if in.Specialization != nil {
			updates["specialization"] = *in.Specialization
		}
		if in.Qualifications != nil {
			updates["qualifications"] = *in.Qualifications
		}
		if in.ServiceRegions != nil {
			updates["service_regions"] = *in.ServiceRegions
		}
		if len(updates) > 0 {
			if err := s.db.Model(&models.VeterinarianProfile{}).
				Where("profile_id = ?", id).
				Updates(updates).Error; err != nil {
				s.log.Warnf("failed to update veterinarian profile %s: %v", id, err)
				return nil, err
			}
		}
	}

	return s.GetByID(id)
}

// SetAvailability flips the vet's availability flag. Owner only.
func (s *ProfileService) SetAvailability(actorID, vetID string, isAvailable bool) (*VeterinarianListing, error) {
	if actorID != vetID {
		return nil, ErrUnauthorized
	}
	result := s.db.Model(&models.VeterinarianProfile{}).
		Where("profile_id = ?", vetID).
		Update("is_available", isAvailable)
	if result.Error != nil {
		s.log.Warnf("failed to update availability for %s: %v", vetID, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(vetID)
}

// SetPhoto stores the image-host URL on the profile. Upload happens at the
// controller before this call.
func (s *ProfileService) SetPhoto(actorID, photoURL string) (*VeterinarianListing, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", actorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	profile.ProfilePhoto = photoURL
	if err := s.db.Save(&profile).Error; err != nil {
		s.log.Warnf("failed to update profile photo for %s: %v", actorID, err)
		return nil, err
	}
	return s.GetByID(actorID)
}

// ListVeterinarians returns the marketplace directory with vet payloads.
func (s *ProfileService) ListVeterinarians() ([]VeterinarianListing, error) {
	var vets []models.Profile
	if err := s.db.Where("role = ?", models.RoleVeterinarian).Order("name asc").Find(&vets).Error; err != nil {
		s.log.Warnf("failed to list veterinarians: %v", err)
		return nil, err
	}

	ids := make([]string, 0, len(vets))
	for _, v := range vets {
		ids = append(ids, v.ID)
	}
	payloads := map[string]models.VeterinarianProfile{}
	if len(ids) > 0 {
		var rows []models.VeterinarianProfile
		if err := s.db.Where("profile_id IN ?", ids).Find(&rows).Error; err != nil {
			s.log.Warnf("failed to load veterinarian payloads: %v", err)
			return nil, err
		}
		for _, r := range rows {
			payloads[r.ProfileID] = r
		}
	}

	listings := make([]VeterinarianListing, 0, len(vets))
	for _, v := range vets {
		listings = append(listings, VeterinarianListing{Profile: v, Vet: payloads[v.ID]})
	}
	return listings, nil
}
