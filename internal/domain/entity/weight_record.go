package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WeightRecord is one weighing of a patient
type WeightRecord struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	WeightKg   decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"weight_kg"`
	Notes      string          `gorm:"type:text" json:"notes,omitempty"`
	RecordedBy *uuid.UUID      `gorm:"type:uuid" json:"recorded_by,omitempty"`
	RecordedAt time.Time       `gorm:"not null;index" json:"recorded_at"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (WeightRecord) TableName() string {
	return "weight_records"
}
