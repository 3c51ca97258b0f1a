package repository

import (
	"context"
	"errors"

	"go-vet-clinic/internal/domain/entity"
	domainRepo "go-vet-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

// Disease Repository

type diseaseRepository struct{}

func NewDiseaseRepository() domainRepo.DiseaseRepository {
	return &diseaseRepository{}
}

func (r *diseaseRepository) Create(ctx context.Context, db *gorm.DB, disease *entity.Disease) error {
	return db.WithContext(ctx).Create(disease).Error
}

func (r *diseaseRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Disease, error) {
	var disease entity.Disease
	err := db.WithContext(ctx).Where("id = ?", id).First(&disease).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &disease, nil
}

func (r *diseaseRepository) FindAll(ctx context.Context, db *gorm.DB, search string) ([]entity.Disease, error) {
	var diseases []entity.Disease
	query := db.WithContext(ctx)
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := query.Order("name ASC").Find(&diseases).Error; err != nil {
		return nil, err
	}
	return diseases, nil
}

func (r *diseaseRepository) Update(ctx context.Context, db *gorm.DB, disease *entity.Disease) error {
	return db.WithContext(ctx).Save(disease).Error
}

func (r *diseaseRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Disease{})
	return result.RowsAffected, result.Error
}

// Medicine Repository

type medicineRepository struct{}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) Create(ctx context.Context, db *gorm.DB, medicine *entity.Medicine) error {
	return db.WithContext(ctx).Create(medicine).Error
}

func (r *medicineRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.WithContext(ctx).Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []int) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) FindAll(ctx context.Context, db *gorm.DB, search string) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	query := db.WithContext(ctx)
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := query.Order("name ASC").Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) CountLowStock(ctx context.Context, db *gorm.DB, threshold int) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Medicine{}).Where("stock < ?", threshold).Count(&total).Error
	return total, err
}

func (r *medicineRepository) Update(ctx context.Context, db *gorm.DB, medicine *entity.Medicine) error {
	return db.WithContext(ctx).Save(medicine).Error
}

// DecrementStock atomically takes quantity out of stock ONLY if enough is left.
// Returns affected rows: 1 = success, 0 = insufficient stock (prevents overselling race).
func (r *medicineRepository) DecrementStock(ctx context.Context, db *gorm.DB, id int, quantity int) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Medicine{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	return result.RowsAffected, result.Error
}

func (r *medicineRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Medicine{})
	return result.RowsAffected, result.Error
}
