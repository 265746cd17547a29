package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agropetvet/vetcare-app/models"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) *AuthService {
	return NewAuthService(testDB(t), testLogger(), testSecret, nil)
}

func TestRegisterDefaultsToClientRole(t *testing.T) {
	auth := newAuthService(t)

	profile, err := auth.Register(RegisterInput{
		Email:    "farmer@example.com",
		Password: "secret123",
		Name:     "Farmer Joe",
	})
	require.NoError(t, err)

	assert.Equal(t, "farmer@example.com", profile.ID)
	assert.Equal(t, models.RoleClient, profile.Role)
	assert.NotEqual(t, "secret123", profile.Password, "password must be hashed")
}

func TestRegisterVeterinarianCreatesPayloadRow(t *testing.T) {
	auth := newAuthService(t)

	profile, err := auth.Register(RegisterInput{
		Email:    "vet@example.com",
		Password: "secret123",
		Role:     string(models.RoleVeterinarian),
	})
	require.NoError(t, err)

	var vet models.VeterinarianProfile
	require.NoError(t, auth.db.First(&vet, "profile_id = ?", profile.ID).Error)
	assert.Equal(t, models.VerificationPending, vet.VerificationStatus)
	assert.False(t, vet.IsAvailable)
}

func TestRegisterRejectsMissingFieldsAndDuplicates(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register(RegisterInput{Email: "", Password: "secret123"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = auth.Register(RegisterInput{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	_, err = auth.Register(RegisterInput{Email: "a@example.com", Password: "other456"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	auth := newAuthService(t)
	_, err := auth.Register(RegisterInput{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	profile, err := auth.Authenticate("a@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", profile.Email)

	_, err = auth.Authenticate("a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Authenticate("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionRoundTrip(t *testing.T) {
	auth := newAuthService(t)
	profile, err := auth.Register(RegisterInput{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	token, err := auth.IssueSession(profile)
	require.NoError(t, err)

	identity := auth.ResolveSession(token)
	require.NotNil(t, identity)
	assert.Equal(t, "a@example.com", identity.UserID)
	assert.Equal(t, "a@example.com", identity.Email)
}

func TestResolveSessionRejectsBadTokens(t *testing.T) {
	auth := newAuthService(t)

	assert.Nil(t, auth.ResolveSession(""))
	assert.Nil(t, auth.ResolveSession("not-a-token"))

	// Signed with the wrong key.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "a@example.com",
		"email":  "a@example.com",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	forgedString, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)
	assert.Nil(t, auth.ResolveSession(forgedString))

	// Correctly signed but expired.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "a@example.com",
		"email":  "a@example.com",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)
	assert.Nil(t, auth.ResolveSession(expiredString))
}
