package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is an animal under the clinic's care, with its owner's contact
type Patient struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string     `gorm:"type:varchar(100);not null;index" json:"name"`
	Species      string     `gorm:"type:varchar(50);not null" json:"species"`
	Breed        string     `gorm:"type:varchar(100)" json:"breed,omitempty"`
	Sex          string     `gorm:"type:char(1);not null" json:"sex"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	OwnerName    string     `gorm:"type:varchar(255);not null;index" json:"owner_name"`
	OwnerPhone   string     `gorm:"type:varchar(20);not null;index" json:"owner_phone"`
	OwnerEmail   string     `gorm:"type:varchar(255)" json:"owner_email,omitempty"`
	OwnerAddress string     `gorm:"type:text" json:"owner_address,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	WeightRecords []WeightRecord `gorm:"foreignKey:PatientID" json:"weight_records,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Sex constants
const (
	SexMale   = "M"
	SexFemale = "F"
)
