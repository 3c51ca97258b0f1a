package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Species      string `json:"species" validate:"required,max=50"`
	Breed        string `json:"breed" validate:"omitempty,max=100"`
	Sex          string `json:"sex" validate:"required,oneof=M F"`
	DateOfBirth  string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	OwnerName    string `json:"owner_name" validate:"required,min=2"`
	OwnerPhone   string `json:"owner_phone" validate:"required,ph_mobile"`
	OwnerEmail   string `json:"owner_email" validate:"omitempty,email"`
	OwnerAddress string `json:"owner_address" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	Name         string `json:"name" validate:"omitempty,max=100"`
	Species      string `json:"species" validate:"omitempty,max=50"`
	Breed        string `json:"breed" validate:"omitempty,max=100"`
	Sex          string `json:"sex" validate:"omitempty,oneof=M F"`
	DateOfBirth  string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	OwnerName    string `json:"owner_name" validate:"omitempty,min=2"`
	OwnerPhone   string `json:"owner_phone" validate:"omitempty,ph_mobile"`
	OwnerEmail   string `json:"owner_email" validate:"omitempty,email"`
	OwnerAddress string `json:"owner_address" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed,omitempty"`
	Sex          string    `json:"sex"`
	DateOfBirth  string    `json:"date_of_birth,omitempty"`
	OwnerName    string    `json:"owner_name"`
	OwnerPhone   string    `json:"owner_phone"`
	OwnerEmail   string    `json:"owner_email,omitempty"`
	OwnerAddress string    `json:"owner_address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}
