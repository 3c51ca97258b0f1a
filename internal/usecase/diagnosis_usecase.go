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
	"go-vet-clinic/pkg/datefilter"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDiagnosisNotFound   = errors.New("diagnosis not found")
	ErrAppointmentMismatch = errors.New("appointment does not belong to the patient")
	ErrInvalidRecordTime   = errors.New("invalid record time, use RFC3339 or YYYY-MM-DD HH:MM")
)

type DiagnosisUsecase interface {
	CreateDiagnosis(ctx context.Context, patientID uuid.UUID, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error)
	ListDiagnoses(ctx context.Context, filter *entity.PatientRecordFilter) (*dto.DiagnosisListResponse, error)
}

type diagnosisUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	diagnosisRepo     repository.DiagnosisRepository
	patientRepo       repository.PatientRepository
	diseaseRepo       repository.DiseaseRepository
	appointmentRepo   repository.AppointmentRepository
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
	location          *time.Location
}

func NewDiagnosisUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diagnosisRepo repository.DiagnosisRepository,
	patientRepo repository.PatientRepository,
	diseaseRepo repository.DiseaseRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
	location *time.Location,
) DiagnosisUsecase {
	return &diagnosisUsecase{
		db:                db,
		log:               log,
		diagnosisRepo:     diagnosisRepo,
		patientRepo:       patientRepo,
		diseaseRepo:       diseaseRepo,
		appointmentRepo:   appointmentRepo,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
		location:          location,
	}
}

func (u *diagnosisUsecase) CreateDiagnosis(ctx context.Context, patientID uuid.UUID, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	diagnosedAt, err := recordTime(req.DiagnosedAt, u.location)
	if err != nil {
		return nil, err
	}

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

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	disease, err := u.diseaseRepo.FindByID(ctx, tx, req.DiseaseID)
	if err != nil {
		u.log.Warnf("Failed to find disease: %+v", err)
		return nil, err
	}
	if disease == nil {
		return nil, ErrDiseaseNotFound
	}

	if req.AppointmentID != nil {
		appointment, err := u.appointmentRepo.FindByID(ctx, tx, *req.AppointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment: %+v", err)
			return nil, err
		}
		if appointment == nil {
			return nil, ErrAppointmentNotFound
		}
		if appointment.PatientID != patient.ID {
			return nil, ErrAppointmentMismatch
		}
	}

	diagnosis := &entity.Diagnosis{
		PatientID:     patient.ID,
		DoctorID:      doctor.UserID,
		AppointmentID: req.AppointmentID,
		DiseaseID:     disease.ID,
		Notes:         req.Notes,
		DiagnosedAt:   diagnosedAt,
	}
	if err := u.diagnosisRepo.Create(ctx, tx, diagnosis); err != nil {
		u.log.Warnf("Failed to create diagnosis: %+v", err)
		return nil, err
	}

	diagnosis.Disease = *disease
	diagnosis.Doctor = *doctor
	resp := converter.DiagnosisToResponse(diagnosis)

	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionDiagnosisCreate, "diagnosis", diagnosis.ID.String(), resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *diagnosisUsecase) ListDiagnoses(ctx context.Context, filter *entity.PatientRecordFilter) (*dto.DiagnosisListResponse, error) {
	if err := ensurePatient(ctx, u.db, u.log, u.patientRepo, filter.PatientID); err != nil {
		return nil, err
	}

	diagnoses, err := u.diagnosisRepo.ListByPatient(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list diagnoses: %+v", err)
		return nil, err
	}

	return &dto.DiagnosisListResponse{
		Diagnoses: converter.DiagnosesToResponses(diagnoses),
		Total:     len(diagnoses),
	}, nil
}

// recordTime parses an optional record timestamp; empty means now
func recordTime(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	t, err := datefilter.ParseTime(raw, loc)
	if err != nil {
		return time.Time{}, ErrInvalidRecordTime
	}
	return t, nil
}

func ensurePatient(ctx context.Context, db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository, patientID uuid.UUID) error {
	patient, err := patientRepo.FindByID(ctx, db, patientID)
	if err != nil {
		log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	return nil
}
