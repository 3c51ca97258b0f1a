package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDiagnosisRequest struct {
	DiseaseID     int        `json:"disease_id" validate:"required,gt=0"`
	AppointmentID *uuid.UUID `json:"appointment_id" validate:"omitempty"`
	Notes         string     `json:"notes" validate:"omitempty"`
	DiagnosedAt   string     `json:"diagnosed_at" validate:"omitempty"` // Format: RFC3339 or YYYY-MM-DD HH:MM
}

// Response DTOs

type DiagnosisResponse struct {
	ID            uuid.UUID        `json:"id"`
	PatientID     uuid.UUID        `json:"patient_id"`
	DoctorID      uuid.UUID        `json:"doctor_id"`
	DoctorName    string           `json:"doctor_name,omitempty"`
	AppointmentID *uuid.UUID       `json:"appointment_id,omitempty"`
	Disease       *DiseaseResponse `json:"disease,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	DiagnosedAt   time.Time        `json:"diagnosed_at"`
}

type DiagnosisListResponse struct {
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
	Total     int                 `json:"total"`
}
