package repository

import (
	"context"
	"errors"

	"go-vet-clinic/internal/domain/entity"
	domainRepo "go-vet-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Omit("Patient", "Doctor").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Preload("Patient").Preload("Doctor").Preload("Doctor.User").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// filtered applies every AppointmentFilter condition, including the date filter on scheduled_at.
func (r *appointmentRepository) filtered(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) (*gorm.DB, error) {
	query := db.WithContext(ctx).Model(&entity.Appointment{})
	if filter == nil {
		return query, nil
	}

	if filter.Status != "" {
		query = query.Where("appointments.status = ?", filter.Status)
	}
	if filter.DoctorID != nil {
		query = query.Where("appointments.doctor_id = ?", *filter.DoctorID)
	}
	if filter.PatientID != nil {
		query = query.Where("appointments.patient_id = ?", *filter.PatientID)
	}

	return scopeDates(query, "appointments.scheduled_at", filter.Dates)
}

func (r *appointmentRepository) List(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	query, err := r.filtered(ctx, db, filter)
	if err != nil {
		return nil, 0, err
	}
	// reusable for both the count and the page
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var page entity.Pagination
	if filter != nil {
		page = filter.Pagination
	}

	var appointments []entity.Appointment
	err = paginate(query, page).
		Preload("Patient").Preload("Doctor").Preload("Doctor.User").
		Order("appointments.scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) Count(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) (int64, error) {
	query, err := r.filtered(ctx, db, filter)
	if err != nil {
		return 0, err
	}

	var total int64
	err = query.Count(&total).Error
	return total, err
}

func (r *appointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Omit("Patient", "Doctor").Save(appointment).Error
}

// UpdateStatus atomically moves an appointment from one status to another.
// Returns affected rows: 1 = success, 0 = status changed concurrently.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
