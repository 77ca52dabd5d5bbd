package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel mirrors the 'contacts' table. A NULL end_date means the
// relationship is open-ended.
type ContactModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key"`
	Version          int        `gorm:"not null"`
	LastName         string     `gorm:"type:varchar(100);not null"`
	FirstName        string     `gorm:"type:varchar(100);not null"`
	Relationship     string     `gorm:"type:varchar(20)"`
	WithdrawalLimit  int        `gorm:"not null"`
	EmergencyContact bool       `gorm:"not null"`
	StartDate        time.Time  `gorm:"type:date"`
	EndDate          *time.Time `gorm:"type:date"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
