package repository

import (
	"context"
	"errors"

	"go-vet-clinic/internal/domain/entity"
	domainRepo "go-vet-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

// Create inserts the prescription together with its items
func (r *prescriptionRepository) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error {
	return db.WithContext(ctx).Omit("Doctor", "Items.Medicine").Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.WithContext(ctx).
		Preload("Items.Medicine").Preload("Doctor.User").
		Where("id = ?", id).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, db *gorm.DB, filter *entity.PatientRecordFilter) ([]entity.Prescription, error) {
	query := db.WithContext(ctx).Where("prescriptions.patient_id = ?", filter.PatientID)
	query, err := scopeDates(query, "prescriptions.prescribed_at", filter.Dates)
	if err != nil {
		return nil, err
	}

	var prescriptions []entity.Prescription
	err = query.
		Preload("Items.Medicine").Preload("Doctor.User").
		Order("prescriptions.prescribed_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}
