package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type PrescriptionItemRequest struct {
	MedicineID   int    `json:"medicine_id" validate:"required,gt=0"`
	Dosage       string `json:"dosage" validate:"required,max=100"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	Instructions string `json:"instructions" validate:"omitempty"`
}

type CreatePrescriptionRequest struct {
	DiagnosisID *uuid.UUID                `json:"diagnosis_id" validate:"omitempty"`
	Notes       string                    `json:"notes" validate:"omitempty"`
	Items       []PrescriptionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Response DTOs

type PrescriptionItemResponse struct {
	MedicineID   int             `json:"medicine_id"`
	MedicineName string          `json:"medicine_name,omitempty"`
	Unit         string          `json:"unit,omitempty"`
	Dosage       string          `json:"dosage"`
	Quantity     int             `json:"quantity"`
	Instructions string          `json:"instructions,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type PrescriptionResponse struct {
	ID           uuid.UUID                  `json:"id"`
	PatientID    uuid.UUID                  `json:"patient_id"`
	DoctorID     uuid.UUID                  `json:"doctor_id"`
	DoctorName   string                     `json:"doctor_name,omitempty"`
	DiagnosisID  *uuid.UUID                 `json:"diagnosis_id,omitempty"`
	Notes        string                     `json:"notes,omitempty"`
	Items        []PrescriptionItemResponse `json:"items"`
	Total        decimal.Decimal            `json:"total"`
	PrescribedAt time.Time                  `json:"prescribed_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
