package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID    uuid.UUID `json:"doctor_id" validate:"required"`
	ScheduledAt string    `json:"scheduled_at" validate:"required"` // Format: RFC3339 or YYYY-MM-DD HH:MM
	Reason      string    `json:"reason" validate:"omitempty,max=500"`
}

type UpdateAppointmentRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" validate:"omitempty"`
	ScheduledAt string    `json:"scheduled_at" validate:"omitempty"`
	Reason      string    `json:"reason" validate:"omitempty,max=500"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID        `json:"id"`
	PatientID   uuid.UUID        `json:"patient_id"`
	Patient     *PatientResponse `json:"patient,omitempty"`
	DoctorID    uuid.UUID        `json:"doctor_id"`
	Doctor      *DoctorResponse  `json:"doctor,omitempty"`
	ScheduledAt time.Time        `json:"scheduled_at"`
	Reason      string           `json:"reason,omitempty"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}
