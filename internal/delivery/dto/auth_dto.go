package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	PhoneNumber string `json:"phone_number" validate:"required,ph_mobile"`
	Role        string `json:"role" validate:"required,oneof=doctor receptionist"`

	// Doctor-only fields
	LicenseNumber  string `json:"license_number" validate:"required_if=Role doctor"`
	Specialization string `json:"specialization" validate:"required_if=Role doctor"`
	Biography      string `json:"biography" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required,uuid"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RedirectTo   string `json:"redirect_to"`
}

type RegisterResponse struct {
	User              *UserResponse `json:"user"`
	VerificationToken string        `json:"verification_token,omitempty"`
}

type VerifyEmailResponse struct {
	User       *UserResponse `json:"user"`
	RedirectTo string        `json:"redirect_to"`
}

type UserResponse struct {
	ID              uuid.UUID              `json:"id"`
	Email           string                 `json:"email"`
	FullName        string                 `json:"full_name"`
	PhoneNumber     string                 `json:"phone_number,omitempty"`
	Role            string                 `json:"role"`
	EmailVerifiedAt *time.Time             `json:"email_verified_at,omitempty"`
	DoctorProfile   *DoctorProfileResponse `json:"doctor_profile,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}
