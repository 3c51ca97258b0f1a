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
	ErrPatientNotFound   = errors.New("patient not found")
	ErrPatientHasRecords = errors.New("patient still has appointments or medical records")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, filter *entity.PatientFilter) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := parseBirthDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:         req.Name,
		Species:      req.Species,
		Breed:        req.Breed,
		Sex:          req.Sex,
		DateOfBirth:  dob,
		OwnerName:    req.OwnerName,
		OwnerPhone:   req.OwnerPhone,
		OwnerEmail:   req.OwnerEmail,
		OwnerAddress: req.OwnerAddress,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	resp := converter.PatientToResponse(patient)
	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionPatientCreate, "patient", patient.ID.String(), resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) ListPatients(ctx context.Context, filter *entity.PatientFilter) (*dto.PatientListResponse, error) {
	patients, total, err := u.patientRepo.List(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    total,
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := parseBirthDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.Species != "" {
		patient.Species = req.Species
	}
	if req.Breed != "" {
		patient.Breed = req.Breed
	}
	if req.Sex != "" {
		patient.Sex = req.Sex
	}
	if dob != nil {
		patient.DateOfBirth = dob
	}
	if req.OwnerName != "" {
		patient.OwnerName = req.OwnerName
	}
	if req.OwnerPhone != "" {
		patient.OwnerPhone = req.OwnerPhone
	}
	if req.OwnerEmail != "" {
		patient.OwnerEmail = req.OwnerEmail
	}
	if req.OwnerAddress != "" {
		patient.OwnerAddress = req.OwnerAddress
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	newValue := converter.PatientToResponse(patient)
	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionPatientUpdate, "patient", id.String(), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	affected, err := u.patientRepo.Delete(ctx, tx, id)
	if err != nil {
		if isForeignKeyError(err, "patient") {
			return ErrPatientHasRecords
		}
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionPatientDelete, "patient", id.String(), converter.PatientToResponse(patient)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// parseBirthDate reads an optional YYYY-MM-DD value
func parseBirthDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	dob, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &dob, nil
}
