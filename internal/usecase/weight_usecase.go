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

var ErrInvalidWeight = errors.New("weight must be greater than zero")

type WeightUsecase interface {
	RecordWeight(ctx context.Context, patientID uuid.UUID, req *dto.RecordWeightRequest) (*dto.WeightRecordResponse, error)
	GetWeightHistory(ctx context.Context, filter *entity.PatientRecordFilter) (*dto.WeightHistoryResponse, error)
}

type weightUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	weightRepo   repository.WeightRecordRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
	location     *time.Location
}

func NewWeightUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	weightRepo repository.WeightRecordRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
	location *time.Location,
) WeightUsecase {
	return &weightUsecase{
		db:           db,
		log:          log,
		weightRepo:   weightRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
		location:     location,
	}
}

func (u *weightUsecase) RecordWeight(ctx context.Context, patientID uuid.UUID, req *dto.RecordWeightRequest) (*dto.WeightRecordResponse, error) {
	if !req.WeightKg.IsPositive() {
		return nil, ErrInvalidWeight
	}
	recordedAt, err := recordTime(req.RecordedAt, u.location)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := ensurePatient(ctx, tx, u.log, u.patientRepo, patientID); err != nil {
		return nil, err
	}

	actor := actorFromContext(ctx)
	record := &entity.WeightRecord{
		PatientID:  patientID,
		WeightKg:   req.WeightKg.Round(2),
		Notes:      req.Notes,
		RecordedBy: actor,
		RecordedAt: recordedAt,
	}
	if err := u.weightRepo.Create(ctx, tx, record); err != nil {
		u.log.Warnf("Failed to create weight record: %+v", err)
		return nil, err
	}

	resp := converter.WeightRecordToResponse(record)
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionWeightRecord, "patient", patientID.String(), resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// GetWeightHistory lists the filtered history; latest and change always
// reflect the two newest weighings regardless of the filter.
func (u *weightUsecase) GetWeightHistory(ctx context.Context, filter *entity.PatientRecordFilter) (*dto.WeightHistoryResponse, error) {
	if err := ensurePatient(ctx, u.db, u.log, u.patientRepo, filter.PatientID); err != nil {
		return nil, err
	}

	history, err := u.weightRepo.ListByPatient(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list weight records: %+v", err)
		return nil, err
	}

	latest, err := u.weightRepo.FindLatest(ctx, u.db, filter.PatientID, 2)
	if err != nil {
		u.log.Warnf("Failed to find latest weight records: %+v", err)
		return nil, err
	}

	return converter.WeightHistoryToResponse(history, latest), nil
}
