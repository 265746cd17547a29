package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

func profileFixture(t *testing.T) (*ProfileService, *gorm.DB) {
	db := testDB(t)
	seedProfile(t, db, "farmer@example.com", models.RoleClient)
	seedProfile(t, db, "vet@example.com", models.RoleVeterinarian)
	return NewProfileService(db, testLogger()), db
}

func TestUpdateIsOwnerOnly(t *testing.T) {
	svc, _ := profileFixture(t)

	name := "New Name"
	_, err := svc.Update("farmer@example.com", "vet@example.com", ProfileUpdateInput{Name: &name})
	assert.ErrorIs(t, err, ErrUnauthorized)

	listing, err := svc.Update("farmer@example.com", "farmer@example.com", ProfileUpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", listing.Name)
}

func TestUpdateVetFieldsLandOnPayloadRow(t *testing.T) {
	svc, db := profileFixture(t)

	specialization := "Large animals"
	location := "Nakuru"
	listing, err := svc.Update("vet@example.com", "vet@example.com", ProfileUpdateInput{
		Specialization: &specialization,
		Location:       &location,
	})
	require.NoError(t, err)
	assert.Equal(t, "Large animals", listing.Vet.Specialization)
	assert.Equal(t, "Nakuru", listing.Vet.Location)

	// Vet-only fields never land on a client account.
	_, err = svc.Update("farmer@example.com", "farmer@example.com", ProfileUpdateInput{
		Specialization: &specialization,
	})
	require.NoError(t, err)
	var count int64
	db.Model(&models.VeterinarianProfile{}).Where("profile_id = ?", "farmer@example.com").Count(&count)
	assert.Zero(t, count)
}

func TestSetAvailability(t *testing.T) {
	svc, db := profileFixture(t)

	_, err := svc.SetAvailability("farmer@example.com", "vet@example.com", true)
	assert.ErrorIs(t, err, ErrUnauthorized)

	listing, err := svc.SetAvailability("vet@example.com", "vet@example.com", true)
	require.NoError(t, err)
	assert.True(t, listing.Vet.IsAvailable)

	var vet models.VeterinarianProfile
	require.NoError(t, db.First(&vet, "profile_id = ?", "vet@example.com").Error)
	assert.True(t, vet.IsAvailable)
}

func TestSetPhoto(t *testing.T) {
	svc, _ := profileFixture(t)

	listing, err := svc.SetPhoto("farmer@example.com", "https://img.example/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/photo.jpg", listing.ProfilePhoto)
}

func TestListVeterinarians(t *testing.T) {
	svc, db := profileFixture(t)
	seedProfile(t, db, "another-vet@example.com", models.RoleVeterinarian)

	listings, err := svc.ListVeterinarians()
	require.NoError(t, err)
	require.Len(t, listings, 2)
	for _, l := range listings {
		assert.Equal(t, models.RoleVeterinarian, l.Role)
		assert.Equal(t, l.ID, l.Vet.ProfileID)
	}
}

func TestGetByIDMissing(t *testing.T) {
	svc, _ := profileFixture(t)
	_, err := svc.GetByID("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
