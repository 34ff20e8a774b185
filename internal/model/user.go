package model

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a staff member operating the internal tooling.
type User struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Username           string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email              string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash       string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName          string    `json:"firstName" gorm:"size:100"`
	LastName           string    `json:"lastName" gorm:"size:100"`
	Role               string    `json:"role" gorm:"size:50;default:'user'"`
	MustChangePassword bool      `json:"mustChangePassword" gorm:"default:false"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// DisplayName returns the name carried in token claims.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
