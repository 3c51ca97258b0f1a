package repository

import (
	"context"

	"go-vet-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	List(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	Count(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) (int64, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
}
