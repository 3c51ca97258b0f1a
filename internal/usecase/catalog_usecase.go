package usecase

import (
	"context"
	"errors"
	"strconv"

	"go-vet-clinic/internal/converter"
	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/internal/domain/repository"
	"go-vet-clinic/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDiseaseNotFound       = errors.New("disease not found")
	ErrDiseaseAlreadyExists  = errors.New("disease already exists")
	ErrDiseaseInUse          = errors.New("disease is referenced by diagnoses")
	ErrMedicineNotFound      = errors.New("medicine not found")
	ErrMedicineAlreadyExists = errors.New("medicine already exists")
	ErrMedicineInUse         = errors.New("medicine is referenced by prescriptions")
	ErrInvalidPrice          = errors.New("price must be greater than zero")
)

type CatalogUsecase interface {
	CreateDisease(ctx context.Context, req *dto.DiseaseRequest) (*dto.DiseaseResponse, error)
	GetDisease(ctx context.Context, id int) (*dto.DiseaseResponse, error)
	ListDiseases(ctx context.Context, search string) ([]dto.DiseaseResponse, error)
	UpdateDisease(ctx context.Context, id int, req *dto.DiseaseRequest) (*dto.DiseaseResponse, error)
	DeleteDisease(ctx context.Context, id int) error

	CreateMedicine(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetMedicine(ctx context.Context, id int) (*dto.MedicineResponse, error)
	ListMedicines(ctx context.Context, search string) ([]dto.MedicineResponse, error)
	UpdateMedicine(ctx context.Context, id int, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	DeleteMedicine(ctx context.Context, id int) error
}

type catalogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	diseaseRepo  repository.DiseaseRepository
	medicineRepo repository.MedicineRepository
	auditService service.AuditService
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diseaseRepo repository.DiseaseRepository,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
) CatalogUsecase {
	return &catalogUsecase{
		db:           db,
		log:          log,
		diseaseRepo:  diseaseRepo,
		medicineRepo: medicineRepo,
		auditService: auditService,
	}
}

func (u *catalogUsecase) CreateDisease(ctx context.Context, req *dto.DiseaseRequest) (*dto.DiseaseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	disease := &entity.Disease{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := u.diseaseRepo.Create(ctx, tx, disease); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDiseaseAlreadyExists
		}
		u.log.Warnf("Failed to create disease: %+v", err)
		return nil, err
	}

	resp := converter.DiseaseToResponse(disease)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionDiseaseCreate, "disease", strconv.Itoa(disease.ID), resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *catalogUsecase) GetDisease(ctx context.Context, id int) (*dto.DiseaseResponse, error) {
	disease, err := u.diseaseRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find disease: %+v", err)
		return nil, err
	}
	if disease == nil {
		return nil, ErrDiseaseNotFound
	}

	return converter.DiseaseToResponse(disease), nil
}

func (u *catalogUsecase) ListDiseases(ctx context.Context, search string) ([]dto.DiseaseResponse, error) {
	diseases, err := u.diseaseRepo.FindAll(ctx, u.db, search)
	if err != nil {
		u.log.Warnf("Failed to find diseases: %+v", err)
		return nil, err
	}

	return converter.DiseasesToResponses(diseases), nil
}

func (u *catalogUsecase) UpdateDisease(ctx context.Context, id int, req *dto.DiseaseRequest) (*dto.DiseaseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	disease, err := u.diseaseRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find disease: %+v", err)
		return nil, err
	}
	if disease == nil {
		return nil, ErrDiseaseNotFound
	}

	oldValue := converter.DiseaseToResponse(disease)

	disease.Name = req.Name
	disease.Description = req.Description

	if err := u.diseaseRepo.Update(ctx, tx, disease); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDiseaseAlreadyExists
		}
		u.log.Warnf("Failed to update disease: %+v", err)
		return nil, err
	}

	newValue := converter.DiseaseToResponse(disease)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionDiseaseUpdate, "disease", strconv.Itoa(id), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *catalogUsecase) DeleteDisease(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	disease, err := u.diseaseRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find disease: %+v", err)
		return err
	}
	if disease == nil {
		return ErrDiseaseNotFound
	}

	if _, err := u.diseaseRepo.Delete(ctx, tx, id); err != nil {
		if isForeignKeyError(err, "disease") {
			return ErrDiseaseInUse
		}
		u.log.Warnf("Failed to delete disease: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionDiseaseDelete, "disease", strconv.Itoa(id), converter.DiseaseToResponse(disease)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *catalogUsecase) CreateMedicine(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if !req.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicine := &entity.Medicine{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		Price:       req.Price.Round(2),
		Stock:       req.Stock,
	}
	if err := u.medicineRepo.Create(ctx, tx, medicine); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrMedicineAlreadyExists
		}
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	resp := converter.MedicineToResponse(medicine)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionMedicineCreate, "medicine", strconv.Itoa(medicine.ID), resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *catalogUsecase) GetMedicine(ctx context.Context, id int) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *catalogUsecase) ListMedicines(ctx context.Context, search string) ([]dto.MedicineResponse, error) {
	medicines, err := u.medicineRepo.FindAll(ctx, u.db, search)
	if err != nil {
		u.log.Warnf("Failed to find medicines: %+v", err)
		return nil, err
	}

	return converter.MedicinesToResponses(medicines), nil
}

func (u *catalogUsecase) UpdateMedicine(ctx context.Context, id int, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	if req.Price != nil && !req.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicine, err := u.medicineRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	oldValue := converter.MedicineToResponse(medicine)

	if req.Name != "" {
		medicine.Name = req.Name
	}
	if req.Description != "" {
		medicine.Description = req.Description
	}
	if req.Unit != "" {
		medicine.Unit = req.Unit
	}
	if req.Price != nil {
		medicine.Price = req.Price.Round(2)
	}
	if req.Stock != nil {
		medicine.Stock = *req.Stock
	}

	if err := u.medicineRepo.Update(ctx, tx, medicine); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrMedicineAlreadyExists
		}
		u.log.Warnf("Failed to update medicine: %+v", err)
		return nil, err
	}

	newValue := converter.MedicineToResponse(medicine)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionMedicineUpdate, "medicine", strconv.Itoa(id), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *catalogUsecase) DeleteMedicine(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medicine, err := u.medicineRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}

	if _, err := u.medicineRepo.Delete(ctx, tx, id); err != nil {
		if isForeignKeyError(err, "medicine") {
			return ErrMedicineInUse
		}
		u.log.Warnf("Failed to delete medicine: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionMedicineDelete, "medicine", strconv.Itoa(id), converter.MedicineToResponse(medicine)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
