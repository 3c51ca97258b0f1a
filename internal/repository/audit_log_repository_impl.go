package repository

import (
	"context"
	"errors"

	"go-vet-clinic/internal/domain/entity"
	domainRepo "go-vet-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Omit("User").Create(log).Error
}

func (r *auditLogRepository) List(ctx context.Context, db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	if filter == nil {
		filter = &entity.AuditLogFilter{}
	}

	query := db.WithContext(ctx).Model(&entity.AuditLog{})
	if filter.Action != "" {
		query = query.Where("audit_logs.action = ?", filter.Action)
	}

	query, err := scopeDates(query, "audit_logs.created_at", filter.Dates)
	if err != nil {
		return nil, 0, err
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []entity.AuditLog
	err = paginate(query, filter.Pagination).
		Preload("User.Role").
		Order("audit_logs.created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.WithContext(ctx).Preload("User.Role").Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
