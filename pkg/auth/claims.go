package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      enums.MoverRole
	JTI       string
}

// AccessTokenClaims represents the typed JWT issued to mover clients.
type AccessTokenClaims struct {
	UserID    uuid.UUID       `json:"user_id"`
	CompanyID uuid.UUID       `json:"company_id"`
	Role      enums.MoverRole `json:"role"`
	jwt.RegisteredClaims
}
