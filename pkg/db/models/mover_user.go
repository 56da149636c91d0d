package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
)

// MoverUser is a staff account belonging to a removals company.
type MoverUser struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyID      uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	Role           enums.MoverRole `gorm:"column:role;type:mover_role;not null;default:'staff'"`
	FirstName      string          `gorm:"column:first_name;not null"`
	LastName       string          `gorm:"column:last_name;not null"`
	Email          string          `gorm:"column:email;not null;uniqueIndex"`
	Phone          *string         `gorm:"column:phone"`
	PasswordHash   string          `gorm:"column:password_hash;not null"`
	IsActive       bool            `gorm:"column:is_active;not null;default:true"`
	LastLoggedInAt *time.Time      `gorm:"column:last_logged_in_at"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
