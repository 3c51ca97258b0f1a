package usecase

import (
	"context"
	"errors"
	"time"

	"go-vet-clinic/internal/converter"
	"go-vet-clinic/internal/delivery/dto"
	"go-vet-clinic/internal/domain/entity"
	"go-vet-clinic/internal/domain/repository"
	"go-vet-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrInsufficientStock    = errors.New("insufficient medicine stock")
	ErrDiagnosisMismatch    = errors.New("diagnosis does not belong to the patient")
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, patientID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error)
	ListPrescriptions(ctx context.Context, filter *entity.PatientRecordFilter) (*dto.PrescriptionListResponse, error)
}

type prescriptionUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	prescriptionRepo  repository.PrescriptionRepository
	patientRepo       repository.PatientRepository
	diagnosisRepo     repository.DiagnosisRepository
	medicineRepo      repository.MedicineRepository
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	diagnosisRepo repository.DiagnosisRepository,
	medicineRepo repository.MedicineRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:                db,
		log:               log,
		prescriptionRepo:  prescriptionRepo,
		patientRepo:       patientRepo,
		diagnosisRepo:     diagnosisRepo,
		medicineRepo:      medicineRepo,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
	}
}

// CreatePrescription stores the prescription and takes every item out of stock
// in one transaction. Prices are copied from the catalog at this moment.
func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, patientID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	actor := actorFromContext(ctx)
	if actor == nil {
		return nil, ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorProfileRepo.FindByUserID(ctx, tx, *actor)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if err := ensurePatient(ctx, tx, u.log, u.patientRepo, patientID); err != nil {
		return nil, err
	}

	if req.DiagnosisID != nil {
		diagnosis, err := u.diagnosisRepo.FindByID(ctx, tx, *req.DiagnosisID)
		if err != nil {
			u.log.Warnf("Failed to find diagnosis: %+v", err)
			return nil, err
		}
		if diagnosis == nil {
			return nil, ErrDiagnosisNotFound
		}
		if diagnosis.PatientID != patientID {
			return nil, ErrDiagnosisMismatch
		}
	}

	ids := make([]int, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.MedicineID)
	}
	medicines, err := u.medicineRepo.FindByIDs(ctx, tx, ids)
	if err != nil {
		u.log.Warnf("Failed to find medicines: %+v", err)
		return nil, err
	}
	catalog := make(map[int]entity.Medicine, len(medicines))
	for _, m := range medicines {
		catalog[m.ID] = m
	}

	items := make([]entity.PrescriptionItem, 0, len(req.Items))
	for _, item := range req.Items {
		medicine, ok := catalog[item.MedicineID]
		if !ok {
			return nil, ErrMedicineNotFound
		}

		affected, err := u.medicineRepo.DecrementStock(ctx, tx, medicine.ID, item.Quantity)
		if err != nil {
			u.log.Warnf("Failed to decrement medicine stock: %+v", err)
			return nil, err
		}
		if affected == 0 {
			return nil, ErrInsufficientStock
		}

		items = append(items, entity.PrescriptionItem{
			MedicineID:   medicine.ID,
			Dosage:       item.Dosage,
			Quantity:     item.Quantity,
			Instructions: item.Instructions,
			UnitPrice:    medicine.Price,
		})
	}

	prescription := &entity.Prescription{
		PatientID:    patientID,
		DoctorID:     doctor.UserID,
		DiagnosisID:  req.DiagnosisID,
		Notes:        req.Notes,
		PrescribedAt: time.Now().UTC(),
		Items:        items,
	}
	if err := u.prescriptionRepo.Create(ctx, tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	for i := range prescription.Items {
		prescription.Items[i].Medicine = catalog[prescription.Items[i].MedicineID]
	}
	prescription.Doctor = *doctor
	resp := converter.PrescriptionToResponse(prescription)

	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(), resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) ListPrescriptions(ctx context.Context, filter *entity.PatientRecordFilter) (*dto.PrescriptionListResponse, error) {
	if err := ensurePatient(ctx, u.db, u.log, u.patientRepo, filter.PatientID); err != nil {
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.ListByPatient(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}
