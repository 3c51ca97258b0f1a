package repository

import (
	"context"

	"go-vet-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	List(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
