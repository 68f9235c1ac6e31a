package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile shares its ID with the owning User.
type Profile struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	ShiftType   string    `json:"shift_type"` // morning, afternoon, night, or empty
	CompanyName string    `json:"company_name" gorm:"default:'compName01'"`
	IsAdmin     bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ShiftType string

const (
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftNight     ShiftType = "night"
)

const DefaultCompanyName = "compName01"

// Shifts is the fixed reporting order used by the shift report.
func Shifts() []ShiftType {
	return []ShiftType{ShiftMorning, ShiftAfternoon, ShiftNight}
}

func (s ShiftType) IsValid() bool {
	return s == ShiftMorning || s == ShiftAfternoon || s == ShiftNight
}
