package repository

import (
	"context"
	"errors"

	"go-vet-clinic/internal/domain/entity"
	domainRepo "go-vet-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// List supports optional filters: registration date, and name search on patient or owner.
func (r *patientRepository) List(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error) {
	if filter == nil {
		filter = &entity.PatientFilter{}
	}

	query := db.WithContext(ctx).Model(&entity.Patient{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("patients.name ILIKE ? OR patients.owner_name ILIKE ?", like, like)
	}

	query, err := scopeDates(query, "patients.created_at", filter.Dates)
	if err != nil {
		return nil, 0, err
	}
	// reusable for both the count and the page
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []entity.Patient
	err = paginate(query, filter.Pagination).
		Order("patients.created_at DESC").
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error
	return total, err
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit("Appointments", "WeightRecords").Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
