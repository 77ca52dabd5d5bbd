// Package model contains the GORM persistence models mirroring the database
// tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AddressModel is embedded into CustomerModel with the address_ prefix.
type AddressModel struct {
	Street  string `gorm:"type:varchar(100)"`
	HouseNo string `gorm:"type:varchar(10)"`
	ZipCode string `gorm:"type:varchar(10)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	Country string `gorm:"type:varchar(100)"`
}

// CustomerModel mirrors the 'customers' table. Interests, contact options and
// contact IDs live in JSONB columns; the contact ID array keeps insertion
// order.
type CustomerModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Version        int       `gorm:"not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	Username       string    `gorm:"type:varchar(20);unique;not null"`
	PhoneNumber    string    `gorm:"type:varchar(30)"`
	Tier           int       `gorm:"not null"`
	IsSubscribed   bool
	Birthdate      time.Time                      `gorm:"type:date"`
	Gender         string                         `gorm:"type:varchar(10)"`
	MaritalStatus  string                         `gorm:"type:varchar(10)"`
	CustomerState  string                         `gorm:"type:varchar(10);not null"`
	Address        AddressModel                   `gorm:"embedded;embeddedPrefix:address_"`
	Interests      datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	ContactOptions datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	ContactIDs     datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb;column:contact_ids"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
