package models

import (
	"time"
)

type Role string

const (
	RoleClient       Role = "farmer_pet_owner"
	RoleVeterinarian Role = "veterinarian"
	RoleAdmin        Role = "admin"
	RoleSuspended    Role = "suspended"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Profile is the account header shared by every role. The ID is the email
// address. Suspension is a role value, rows are never deleted.
type Profile struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"unique"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Password     string    `json:"-"`
	ProfilePhoto string    `json:"profile_photo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VeterinarianProfile carries the vet-only payload in its own table, so a
// client row can never hold a verification status or availability flag.
type VeterinarianProfile struct {
	ProfileID          string             `json:"profile_id" gorm:"primaryKey"`
	Location           string             `json:"location"`
	Specialization     string             `json:"specialization"`
	Qualifications     string             `json:"qualifications"`
	ServiceRegions     string             `json:"service_regions"`
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"default:pending"`
	IsAvailable        bool               `json:"is_available"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
