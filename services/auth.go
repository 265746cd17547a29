package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

// SessionTTL is how long an issued token stays valid.
const SessionTTL = 24 * time.Hour

// Identity is the authenticated actor derived from a verified session token.
type Identity struct {
	UserID string
	Email  string
}

// AuthService authenticates credentials and issues stateless session tokens.
// The Redis client is optional: when present, revoked tokens are denied until
// they expire; when nil, logout only clears the cookie.
type AuthService struct {
	db     *gorm.DB
	log    *logrus.Logger
	secret []byte
	redis  *redis.Client
}

func NewAuthService(db *gorm.DB, log *logrus.Logger, secret string, redisClient *redis.Client) *AuthService {
	return &AuthService{db: db, log: log, secret: []byte(secret), redis: redisClient}
}

// RegisterInput carries the sign-up form. Role defaults to farmer_pet_owner.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Register creates the profile, hashing the password. A veterinarian sign-up
// also creates the vet payload row in the same transaction.
func (s *AuthService) Register(in RegisterInput) (*models.Profile, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	role := models.Role(in.Role)
	if in.Role == "" {
		role = models.RoleClient
	}
	if role != models.RoleClient && role != models.RoleVeterinarian {
		return nil, fmt.Errorf("%w: role must be %s or %s", ErrValidation, models.RoleClient, models.RoleVeterinarian)
	}

	var existing models.Profile
	if s.db.Where("email = ?", in.Email).First(&existing).RowsAffected > 0 {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warnf("failed to hash password: %v", err)
		return nil, err
	}

	profile := &models.Profile{
		ID:       in.Email,
		Email:    in.Email,
		Name:     in.Name,
		Role:     role,
		Password: string(hashed),
	}

	tx := s.db.Begin()
	defer tx.Rollback()

	if err := tx.Create(profile).Error; err != nil {
		s.log.Warnf("failed to create profile: %v", err)
		return nil, err
	}
	if role == models.RoleVeterinarian {
		vet := &models.VeterinarianProfile{
			ProfileID:          profile.ID,
			VerificationStatus: models.VerificationPending,
		}
		if err := tx.Create(vet).Error; err != nil {
			s.log.Warnf("failed to create veterinarian profile: %v", err)
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// Authenticate checks the credentials against the stored hash. Both an
// unknown email and a wrong password come back as ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (*models.Profile, error) {
	var profile models.Profile
	if s.db.Where("email = ?", email).First(&profile).RowsAffected == 0 {
		return nil, ErrInvalidCredentials
	}
	if profile.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &profile, nil
}

// IssueSession signs a token binding the profile's id and email for
// SessionTTL. No server-side state is written.
func (s *AuthService) IssueSession(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"userId": profile.ID,
		"email":  profile.Email,
		"exp":    time.Now().Add(SessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ResolveSession verifies the token and returns the identity it carries.
// Any malformed, unsigned, expired or revoked token resolves to nil; this
// never returns an error to the caller.
func (s *AuthService) ResolveSession(tokenString string) *Identity {
	if tokenString == "" {
		return nil
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return nil
	}
	email, _ := claims["email"].(string)

	if s.isRevoked(tokenString) {
		return nil
	}
	return &Identity{UserID: userID, Email: email}
}

// RevokeSession denylists the token until its natural expiry. Tokens are
// stateless, so without Redis this is a no-op.
func (s *AuthService) RevokeSession(tokenString string) {
	if s.redis == nil || tokenString == "" {
		return
	}
	if err := s.redis.Set(context.Background(), revokedKey(tokenString), "1", SessionTTL).Err(); err != nil {
		s.log.Warnf("failed to denylist session token: %v", err)
	}
}

func (s *AuthService) isRevoked(tokenString string) bool {
	if s.redis == nil {
		return false
	}
	n, err := s.redis.Exists(context.Background(), revokedKey(tokenString)).Result()
	if err != nil {
		s.log.Warnf("failed to check session denylist: %v", err)
		return false
	}
	return n > 0
}

func revokedKey(tokenString string) string {
	return "session:revoked:" + tokenString
}
