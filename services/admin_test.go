package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

func adminFixture(t *testing.T) (*AdminService, *gorm.DB) {
	db := testDB(t)
	seedProfile(t, db, "admin@example.com", models.RoleAdmin)
	seedProfile(t, db, "farmer@example.com", models.RoleClient)
	seedProfile(t, db, "vet@example.com", models.RoleVeterinarian)
	return NewAdminService(db, testLogger()), db
}

func TestSuspendAndActivate(t *testing.T) {
	svc, db := adminFixture(t)

	suspended, err := svc.Suspend("admin@example.com", "farmer@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuspended, suspended.Role)

	// The row is still there, only the role changed.
	var count int64
	db.Model(&models.Profile{}).Where("id = ?", "farmer@example.com").Count(&count)
	assert.EqualValues(t, 1, count)

	activated, err := svc.Activate("admin@example.com", "farmer@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, activated.Role)
}

func TestModerationRequiresAdminRole(t *testing.T) {
	svc, db := adminFixture(t)

	_, err := svc.Suspend("farmer@example.com", "vet@example.com")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.SetVetVerification("farmer@example.com", "vet@example.com", models.VerificationRejected)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.SetVetVerification("ghost@example.com", "vet@example.com", models.VerificationRejected)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var vet models.VeterinarianProfile
	require.NoError(t, db.First(&vet, "profile_id = ?", "vet@example.com").Error)
	assert.Equal(t, models.VerificationPending, vet.VerificationStatus, "verification untouched")

	var farmer models.Profile
	require.NoError(t, db.First(&farmer, "id = ?", "vet@example.com").Error)
	assert.Equal(t, models.RoleVeterinarian, farmer.Role, "role untouched")
}

func TestSetVetVerification(t *testing.T) {
	svc, db := adminFixture(t)

	_, err := svc.SetVetVerification("admin@example.com", "vet@example.com", models.VerificationVerified)
	require.NoError(t, err)

	var vet models.VeterinarianProfile
	require.NoError(t, db.First(&vet, "profile_id = ?", "vet@example.com").Error)
	assert.Equal(t, models.VerificationVerified, vet.VerificationStatus)

	_, err = svc.SetVetVerification("admin@example.com", "vet@example.com", models.VerificationPending)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SetVetVerification("admin@example.com", "nobody@example.com", models.VerificationRejected)
	assert.ErrorIs(t, err, ErrNotFound)
}
