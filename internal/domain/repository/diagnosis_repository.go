package repository

import (
	"context"

	"go-vet-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	Create(ctx context.Context, db *gorm.DB, diagnosis *entity.Diagnosis) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Diagnosis, error)
	ListByPatient(ctx context.Context, db *gorm.DB, filter *entity.PatientRecordFilter) ([]entity.Diagnosis, error)
}
