package entity

import (
	"time"

	"go-vet-clinic/pkg/datefilter"

	"github.com/google/uuid"
)

// DateFilter carries the filter_type/date/month/year/date_from/date_to
// request parameters down to the repository layer.
type DateFilter struct {
	Params   datefilter.Params
	Location *time.Location
}

// Pagination is a 1-based page request
type Pagination struct {
	Page  int
	Limit int
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Normalize clamps page and limit to usable values
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset is the number of rows to skip
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// PatientFilter is a domain-level filter for listing patients.
type PatientFilter struct {
	Dates  DateFilter
	Search string // ILIKE on patient or owner name
	Pagination
}

// AppointmentFilter is a domain-level filter for listing appointments.
type AppointmentFilter struct {
	Dates     DateFilter
	Status    AppointmentStatus
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Pagination
}

// PatientRecordFilter lists diagnoses, prescriptions or weights of one patient.
type PatientRecordFilter struct {
	Dates     DateFilter
	PatientID uuid.UUID
}

// AuditLogFilter is a domain-level filter for listing audit logs.
type AuditLogFilter struct {
	Dates  DateFilter
	Action string
	Pagination
}
