package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type DiseaseRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description" validate:"omitempty"`
}

type CreateMedicineRequest struct {
	Name        string          `json:"name" validate:"required,max=150"`
	Description string          `json:"description" validate:"omitempty"`
	Unit        string          `json:"unit" validate:"required,max=30"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

type UpdateMedicineRequest struct {
	Name        string           `json:"name" validate:"omitempty,max=150"`
	Description string           `json:"description" validate:"omitempty"`
	Unit        string           `json:"unit" validate:"omitempty,max=30"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
}

// Response DTOs

type DiseaseResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MedicineResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
