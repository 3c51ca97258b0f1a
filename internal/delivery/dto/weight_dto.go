package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type RecordWeightRequest struct {
	WeightKg   decimal.Decimal `json:"weight_kg" validate:"required"`
	Notes      string          `json:"notes" validate:"omitempty"`
	RecordedAt string          `json:"recorded_at" validate:"omitempty"` // Format: RFC3339 or YYYY-MM-DD HH:MM
}

// Response DTOs

type WeightRecordResponse struct {
	ID         int64           `json:"id"`
	WeightKg   decimal.Decimal `json:"weight_kg"`
	Notes      string          `json:"notes,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
}

type WeightHistoryResponse struct {
	Records []WeightRecordResponse `json:"records"`
	Latest  *WeightRecordResponse  `json:"latest,omitempty"`
	// Change is latest minus the record before it
	Change *decimal.Decimal `json:"change,omitempty"`
	Total  int              `json:"total"`
}
