package repository

import (
	"context"

	"go-vet-clinic/internal/domain/entity"

	"gorm.io/gorm"
)

// RoleRepository looks up the seeded staff roles
type RoleRepository interface {
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Role, error)
}
