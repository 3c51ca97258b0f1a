package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Disease is an entry of the diagnosis catalog
type Disease struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Disease) TableName() string {
	return "diseases"
}

// Medicine is an entry of the pharmacy catalog
type Medicine struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Unit        string          `gorm:"type:varchar(30);not null" json:"unit"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// LowStockThreshold marks medicines that need restocking
const LowStockThreshold = 10

// IsLowStock checks if the medicine is below the restock threshold
func (m *Medicine) IsLowStock() bool {
	return m.Stock < LowStockThreshold
}
