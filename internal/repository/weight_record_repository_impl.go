package repository

import (
	"context"

	"go-vet-clinic/internal/domain/entity"
	domainRepo "go-vet-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type weightRecordRepository struct{}

func NewWeightRecordRepository() domainRepo.WeightRecordRepository {
	return &weightRecordRepository{}
}

func (r *weightRecordRepository) Create(ctx context.Context, db *gorm.DB, record *entity.WeightRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

// ListByPatient returns the weight history oldest first
func (r *weightRecordRepository) ListByPatient(ctx context.Context, db *gorm.DB, filter *entity.PatientRecordFilter) ([]entity.WeightRecord, error) {
	query := db.WithContext(ctx).Where("weight_records.patient_id = ?", filter.PatientID)
	query, err := scopeDates(query, "weight_records.recorded_at", filter.Dates)
	if err != nil {
		return nil, err
	}

	var records []entity.WeightRecord
	if err := query.Order("weight_records.recorded_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindLatest returns up to limit records, newest first
func (r *weightRecordRepository) FindLatest(ctx context.Context, db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.WeightRecord, error) {
	var records []entity.WeightRecord
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
