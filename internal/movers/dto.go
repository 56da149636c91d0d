package movers

import (
	"time"

	"github.com/google/uuid"

	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
)

// RegisterInput captures a new mover company signup. The submitting
// user becomes the company owner.
type RegisterInput struct {
	CompanyName      string   `json:"company_name" validate:"required"`
	CoveragePrefixes []string `json:"coverage_prefixes" validate:"required,min=1"`
	Pincode          string   `json:"pincode" validate:"required"`
	FirstName        string   `json:"first_name" validate:"required"`
	LastName         string   `json:"last_name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Phone            string   `json:"phone,omitempty"`
	Password         string   `json:"password" validate:"required,min=8"`
}

// LoginInput carries mover credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the expired access token plus its refresh token.
type RefreshInput struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserDTO is the mover account payload returned to clients.
type UserDTO struct {
	ID             uuid.UUID  `json:"id"`
	CompanyID      uuid.UUID  `json:"company_id"`
	Role           string     `json:"role"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone,omitempty"`
	LastLoggedInAt *time.Time `json:"last_logged_in_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// AuthResponse bundles the token pair with the authenticated account.
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// FromModel maps the persisted user onto the public DTO.
func FromModel(user *models.MoverUser) UserDTO {
	return UserDTO{
		ID:             user.ID,
		CompanyID:      user.CompanyID,
		Role:           user.Role.String(),
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Phone:          user.Phone,
		LastLoggedInAt: user.LastLoggedInAt,
		CreatedAt:      user.CreatedAt,
	}
}
