package mapper

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"talenthub/internal/model"
)

// ApplicationInput is the public submission payload. Any status the
// submitter supplies is ignored; the lifecycle manager forces pending.
type ApplicationInput struct {
	FirstName       string          `json:"firstName" validate:"required"`
	LastName        string          `json:"lastName" validate:"required"`
	Email           string          `json:"email" validate:"required,email"`
	Phone           string          `json:"phone"`
	CurrentPosition string          `json:"currentPosition"`
	Experience      JSONText        `json:"experience"`
	Education       JSONText        `json:"education"`
	Skills          StringList      `json:"skills"`
	Languages       JSONText        `json:"languages"`
	Certifications  JSONText        `json:"certifications"`
	Hobbies         string          `json:"hobbies"`
	BirthDate       string          `json:"birthDate"`
	Summary         string          `json:"summary"`
	Availability    string          `json:"availability"`
	CoverLetter     string          `json:"coverLetter"`
	ExpectedSalary  decimal.Decimal `json:"expectedSalary"`
}

// ToModel maps the payload onto a storage record, applying defaults for
// absent optional fields.
func (in *ApplicationInput) ToModel() *model.Application {
	return &model.Application{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		CurrentPosition: in.CurrentPosition,
		Experience:      in.Experience.String(),
		Education:       in.Education.String(),
		Skills:          pq.StringArray(in.Skills),
		Languages:       in.Languages.String(),
		Certifications:  in.Certifications.String(),
		Hobbies:         in.Hobbies,
		BirthDate:       in.BirthDate,
		Summary:         in.Summary,
		Availability:    normalizeAvailability(in.Availability),
		CoverLetter:     in.CoverLetter,
		ExpectedSalary:  in.ExpectedSalary,
	}
}

// CandidateInput is the staff-entry payload for creating a candidate.
type CandidateInput struct {
	FirstName       string          `json:"firstName" validate:"required"`
	LastName        string          `json:"lastName" validate:"required"`
	Email           string          `json:"email" validate:"required,email"`
	Phone           string          `json:"phone"`
	Location        string          `json:"location"`
	CurrentPosition string          `json:"currentPosition"`
	Profile         string          `json:"profile"`
	Experience      JSONText        `json:"experience"`
	Education       JSONText        `json:"education"`
	Skills          StringList      `json:"skills"`
	Languages       JSONText        `json:"languages"`
	Certifications  JSONText        `json:"certifications"`
	Hobbies         string          `json:"hobbies"`
	BirthDate       string          `json:"birthDate"`
	Summary         string          `json:"summary"`
	Availability    string          `json:"availability"`
	LinkedIn        string          `json:"linkedin"`
	ExpectedSalary  decimal.Decimal `json:"expectedSalary"`
	Status          string          `json:"status" validate:"omitempty,oneof=active interviewing placed inactive"`
}

// ToModel maps the payload onto a storage record with defaults. Status is
// rejected by validation when it is outside the enum, so only the empty case
// needs a default here.
func (in *CandidateInput) ToModel() *model.Candidate {
	status := model.CandidateStatus(in.Status)
	if status == "" {
		status = model.CandidateStatusActive
	}
	return &model.Candidate{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		Location:        in.Location,
		CurrentPosition: in.CurrentPosition,
		Profile:         in.Profile,
		Experience:      in.Experience.String(),
		Education:       in.Education.String(),
		Skills:          pq.StringArray(in.Skills),
		Languages:       in.Languages.String(),
		Certifications:  in.Certifications.String(),
		Hobbies:         in.Hobbies,
		BirthDate:       in.BirthDate,
		Summary:         in.Summary,
		Availability:    normalizeAvailability(in.Availability),
		LinkedIn:        in.LinkedIn,
		ExpectedSalary:  in.ExpectedSalary,
		Status:          status,
	}
}

// CandidatePatch is a partial update; nil fields leave the stored value
// untouched.
type CandidatePatch struct {
	FirstName       *string          `json:"firstName"`
	LastName        *string          `json:"lastName"`
	Email           *string          `json:"email" validate:"omitempty,email"`
	Phone           *string          `json:"phone"`
	Location        *string          `json:"location"`
	CurrentPosition *string          `json:"currentPosition"`
	Profile         *string          `json:"profile"`
	Experience      *JSONText        `json:"experience"`
	Education       *JSONText        `json:"education"`
	Skills          *StringList      `json:"skills"`
	Languages       *JSONText        `json:"languages"`
	Certifications  *JSONText        `json:"certifications"`
	Hobbies         *string          `json:"hobbies"`
	BirthDate       *string          `json:"birthDate"`
	Summary         *string          `json:"summary"`
	Availability    *string          `json:"availability"`
	LinkedIn        *string          `json:"linkedin"`
	ExpectedSalary  *decimal.Decimal `json:"expectedSalary"`
	Status          *string          `json:"status" validate:"omitempty,oneof=active interviewing placed inactive"`
}

// Apply merges the patch onto an existing record.
func (p *CandidatePatch) Apply(c *model.Candidate) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.CurrentPosition != nil {
		c.CurrentPosition = *p.CurrentPosition
	}
	if p.Profile != nil {
		c.Profile = *p.Profile
	}
	if p.Experience != nil {
		c.Experience = p.Experience.String()
	}
	if p.Education != nil {
		c.Education = p.Education.String()
	}
	if p.Skills != nil {
		c.Skills = pq.StringArray(*p.Skills)
	}
	if p.Languages != nil {
		c.Languages = p.Languages.String()
	}
	if p.Certifications != nil {
		c.Certifications = p.Certifications.String()
	}
	if p.Hobbies != nil {
		c.Hobbies = *p.Hobbies
	}
	if p.BirthDate != nil {
		c.BirthDate = *p.BirthDate
	}
	if p.Summary != nil {
		c.Summary = *p.Summary
	}
	if p.Availability != nil {
		c.Availability = normalizeAvailability(*p.Availability)
	}
	if p.LinkedIn != nil {
		c.LinkedIn = *p.LinkedIn
	}
	if p.ExpectedSalary != nil {
		c.ExpectedSalary = *p.ExpectedSalary
	}
	if p.Status != nil {
		c.Status = model.CandidateStatus(*p.Status)
	}
}

// ClientInput is the payload for creating a client, via staff entry or the
// public lead form. Address arrives pre-concatenated from the form's
// street/city/postal/country fields.
type ClientInput struct {
	Name            string `json:"name" validate:"required"`
	ContactPerson   string `json:"contactPerson"`
	ContactFunction string `json:"contactFunction"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Industry        string `json:"industry"`
	Status          string `json:"status" validate:"omitempty,oneof=active inactive lead pending"`
	Notes           string `json:"notes"`
	VATNumber       string `json:"vatNumber"`
}

// ToModel maps the payload onto a storage record. defaultStatus applies when
// the payload carries no status; out-of-enum values are rejected by
// validation before they reach this point.
func (in *ClientInput) ToModel(defaultStatus model.ClientStatus) *model.Client {
	status := model.ClientStatus(in.Status)
	if status == "" {
		status = defaultStatus
	}
	return &model.Client{
		Name:            in.Name,
		ContactPerson:   in.ContactPerson,
		ContactFunction: in.ContactFunction,
		Email:           in.Email,
		Phone:           in.Phone,
		Address:         in.Address,
		Industry:        in.Industry,
		Status:          status,
		Notes:           in.Notes,
		VATNumber:       in.VATNumber,
	}
}

// ClientPatch is a partial update; nil fields leave the stored value untouched.
type ClientPatch struct {
	Name            *string `json:"name"`
	ContactPerson   *string `json:"contactPerson"`
	ContactFunction *string `json:"contactFunction"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	Industry        *string `json:"industry"`
	Status          *string `json:"status" validate:"omitempty,oneof=active inactive lead pending"`
	Notes           *string `json:"notes"`
	VATNumber       *string `json:"vatNumber"`
}

// Apply merges the patch onto an existing record.
func (p *ClientPatch) Apply(c *model.Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.ContactPerson != nil {
		c.ContactPerson = *p.ContactPerson
	}
	if p.ContactFunction != nil {
		c.ContactFunction = *p.ContactFunction
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
	if p.Status != nil {
		c.Status = model.ClientStatus(*p.Status)
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.VATNumber != nil {
		c.VATNumber = *p.VATNumber
	}
}

func normalizeAvailability(v string) string {
	if v == model.AvailabilityYes {
		return model.AvailabilityYes
	}
	return model.AvailabilityNo
}
