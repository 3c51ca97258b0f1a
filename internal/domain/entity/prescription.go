package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Prescription groups the medicines a doctor ordered for a patient
type Prescription struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DiagnosisID  *uuid.UUID `gorm:"type:uuid;index" json:"diagnosis_id,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	PrescribedAt time.Time  `gorm:"not null;index" json:"prescribed_at"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Items  []PrescriptionItem `gorm:"foreignKey:PrescriptionID" json:"items,omitempty"`
	Doctor DoctorProfile      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionItem is one medicine line of a prescription
type PrescriptionItem struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"prescription_id"`
	MedicineID     int             `gorm:"not null;index" json:"medicine_id"`
	Dosage         string          `gorm:"type:varchar(100);not null" json:"dosage"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	Instructions   string          `gorm:"type:text" json:"instructions,omitempty"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`

	// Relationships
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

func (PrescriptionItem) TableName() string {
	return "prescription_items"
}

// Subtotal is the line price
func (i *PrescriptionItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Total sums the line prices
func (p *Prescription) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Items {
		total = total.Add(p.Items[i].Subtotal())
	}
	return total
}
