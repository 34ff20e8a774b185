package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientStatus represents the relationship state of a client company.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusLead     ClientStatus = "lead"
	ClientStatusPending  ClientStatus = "pending"
)

// Client represents a prospective or current customer company.
type Client struct {
	ID              uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string       `json:"name" gorm:"size:255;not null;index"`
	ContactPerson   string       `json:"contactPerson" gorm:"size:255"`
	ContactFunction string       `json:"contactFunction" gorm:"size:255"`
	Email           string       `json:"email" gorm:"size:255;not null"`
	Phone           string       `json:"phone" gorm:"size:50"`
	Address         string       `json:"address" gorm:"type:text"`
	Industry        string       `json:"industry" gorm:"size:255"`
	Status          ClientStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`
	Notes           string       `json:"notes" gorm:"type:text"`
	VATNumber       string       `json:"vatNumber" gorm:"column:vat_number;size:50"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
