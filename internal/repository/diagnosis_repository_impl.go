package repository

import (
	"context"
	"errors"

	"go-vet-clinic/internal/domain/entity"
	domainRepo "go-vet-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type diagnosisRepository struct{}

func NewDiagnosisRepository() domainRepo.DiagnosisRepository {
	return &diagnosisRepository{}
}

func (r *diagnosisRepository) Create(ctx context.Context, db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.WithContext(ctx).Omit("Disease", "Doctor").Create(diagnosis).Error
}

func (r *diagnosisRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Diagnosis, error) {
	var diagnosis entity.Diagnosis
	err := db.WithContext(ctx).
		Preload("Disease").Preload("Doctor.User").
		Where("id = ?", id).
		First(&diagnosis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &diagnosis, nil
}

func (r *diagnosisRepository) ListByPatient(ctx context.Context, db *gorm.DB, filter *entity.PatientRecordFilter) ([]entity.Diagnosis, error) {
	query := db.WithContext(ctx).Where("diagnoses.patient_id = ?", filter.PatientID)
	query, err := scopeDates(query, "diagnoses.diagnosed_at", filter.Dates)
	if err != nil {
		return nil, err
	}

	var diagnoses []entity.Diagnosis
	err = query.
		Preload("Disease").Preload("Doctor.User").
		Order("diagnoses.diagnosed_at DESC").
		Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}
