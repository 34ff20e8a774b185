package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CandidateStatus represents where a candidate sits in the pipeline.
type CandidateStatus string

const (
	CandidateStatusActive       CandidateStatus = "active"
	CandidateStatusInterviewing CandidateStatus = "interviewing"
	CandidateStatusPlaced       CandidateStatus = "placed"
	CandidateStatusInactive     CandidateStatus = "inactive"
)

// Availability values.
const (
	AvailabilityYes = "yes"
	AvailabilityNo  = "no"
)

// Candidate represents a person in the talent pool. Nested structures
// (experience, education, languages, certifications) are stored as
// JSON-encoded text columns; skills live in a native text[] column.
type Candidate struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName       string          `json:"firstName" gorm:"size:100;not null"`
	LastName        string          `json:"lastName" gorm:"size:100;not null"`
	Email           string          `json:"email" gorm:"size:255;not null;index"`
	Phone           string          `json:"phone" gorm:"size:50"`
	Location        string          `json:"location" gorm:"size:255"`
	CurrentPosition string          `json:"currentPosition" gorm:"size:255"`
	Profile         string          `json:"profile" gorm:"size:255"`
	Experience      string          `json:"experience" gorm:"type:text"`
	Education       string          `json:"education" gorm:"type:text"`
	Skills          pq.StringArray  `json:"skills" gorm:"type:text[]"`
	Languages       string          `json:"languages" gorm:"type:text"`
	Certifications  string          `json:"certifications" gorm:"type:text"`
	Hobbies         string          `json:"hobbies" gorm:"type:text"`
	BirthDate       string          `json:"birthDate" gorm:"size:50"`
	Summary         string          `json:"summary" gorm:"type:text"`
	Availability    string          `json:"availability" gorm:"size:10;default:'no'"`
	LinkedIn        string          `json:"linkedin" gorm:"column:linkedin;size:500"`
	ExpectedSalary  decimal.Decimal `json:"expectedSalary" gorm:"type:decimal(12,2)"`
	Status          CandidateStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
