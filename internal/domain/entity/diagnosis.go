package entity

import (
	"time"

	"github.com/google/uuid"
)

// Diagnosis records a disease found on a patient
type Diagnosis struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	DiseaseID     int        `gorm:"not null;index" json:"disease_id"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	DiagnosedAt   time.Time  `gorm:"not null;index" json:"diagnosed_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Disease Disease       `gorm:"foreignKey:DiseaseID" json:"disease,omitempty"`
	Doctor  DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}
