package repository

import (
	"context"

	"go-vet-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

type DiseaseRepository interface {
	Create(ctx context.Context, db *gorm.DB, disease *entity.Disease) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Disease, error)
	FindAll(ctx context.Context, db *gorm.DB, search string) ([]entity.Disease, error)
	Update(ctx context.Context, db *gorm.DB, disease *entity.Disease) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}

type MedicineRepository interface {
	Create(ctx context.Context, db *gorm.DB, medicine *entity.Medicine) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Medicine, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int) ([]entity.Medicine, error)
	FindAll(ctx context.Context, db *gorm.DB, search string) ([]entity.Medicine, error)
	CountLowStock(ctx context.Context, db *gorm.DB, threshold int) (int64, error)
	Update(ctx context.Context, db *gorm.DB, medicine *entity.Medicine) error
	DecrementStock(ctx context.Context, db *gorm.DB, id int, quantity int) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
