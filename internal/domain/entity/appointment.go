package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a visit booked for a patient with a doctor
type Appointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ScheduledAt time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Reason      string            `gorm:"type:text" json:"reason,omitempty"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// appointmentTransitions lists the statuses each status may move to
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

// CanTransitionTo checks whether the appointment may move to next
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsPending checks if appointment is in pending status
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsClosed checks if the appointment can no longer change
func (a *Appointment) IsClosed() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCancelled
}
