package repository

import (
	"context"

	"go-vet-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeightRecordRepository interface {
	Create(ctx context.Context, db *gorm.DB, record *entity.WeightRecord) error
	ListByPatient(ctx context.Context, db *gorm.DB, filter *entity.PatientRecordFilter) ([]entity.WeightRecord, error)
	FindLatest(ctx context.Context, db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.WeightRecord, error)
}
