package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ApplicationStatus represents the review state of an application.
// Status starts at pending and is monotonic: it moves to approved or
// rejected exactly once and is never reversed.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application represents a public job-application submission awaiting review.
// Approval copies its personal/professional fields into a new Candidate; no
// foreign key between the two is kept.
type Application struct {
	ID              uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName       string            `json:"firstName" gorm:"size:100;not null"`
	LastName        string            `json:"lastName" gorm:"size:100;not null"`
	Email           string            `json:"email" gorm:"size:255;not null;index"`
	Phone           string            `json:"phone" gorm:"size:50"`
	CurrentPosition string            `json:"currentPosition" gorm:"size:255"`
	Experience      string            `json:"experience" gorm:"type:text"`
	Education       string            `json:"education" gorm:"type:text"`
	Skills          pq.StringArray    `json:"skills" gorm:"type:text[]"`
	Languages       string            `json:"languages" gorm:"type:text"`
	Certifications  string            `json:"certifications" gorm:"type:text"`
	Hobbies         string            `json:"hobbies" gorm:"type:text"`
	BirthDate       string            `json:"birthDate" gorm:"size:50"`
	Summary         string            `json:"summary" gorm:"type:text"`
	Availability    string            `json:"availability" gorm:"size:10;default:'no'"`
	CoverLetter     string            `json:"coverLetter" gorm:"type:text"`
	ExpectedSalary  decimal.Decimal   `json:"expectedSalary" gorm:"type:decimal(12,2)"`
	Status          ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ToCandidate copies the application's personal and professional fields into
// a fresh Candidate record. The candidate gets its own identity.
func (a *Application) ToCandidate() *Candidate {
	return &Candidate{
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		Phone:           a.Phone,
		CurrentPosition: a.CurrentPosition,
		Experience:      a.Experience,
		Education:       a.Education,
		Skills:          append(pq.StringArray(nil), a.Skills...),
		Languages:       a.Languages,
		Certifications:  a.Certifications,
		Hobbies:         a.Hobbies,
		BirthDate:       a.BirthDate,
		Summary:         a.Summary,
		Availability:    a.Availability,
		ExpectedSalary:  a.ExpectedSalary,
		Status:          CandidateStatusActive,
	}
}
