package dto

import (
	"github.com/google/uuid"
)

// Response DTOs

type DoctorProfileResponse struct {
	LicenseNumber  string `json:"license_number"`
	Specialization string `json:"specialization"`
	Biography      string `json:"biography,omitempty"`
}

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	LicenseNumber  string    `json:"license_number"`
	Specialization string    `json:"specialization"`
	Biography      string    `json:"biography,omitempty"`
	IsActive       *bool     `json:"is_active"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// Request DTOs

type DoctorUpdateSelfRequest struct {
	PhoneNumber    string `json:"phone_number" validate:"omitempty,ph_mobile"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Biography      string `json:"biography" validate:"omitempty"`
	OldPassword    string `json:"old_password" validate:"required_with=Password"`
	Password       string `json:"password" validate:"omitempty,min=8"`
}
