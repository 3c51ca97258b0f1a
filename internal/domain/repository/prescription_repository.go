package repository

import (
	"context"

	"go-vet-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	ListByPatient(ctx context.Context, db *gorm.DB, filter *entity.PatientRecordFilter) ([]entity.Prescription, error)
}
