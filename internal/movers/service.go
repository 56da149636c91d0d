package movers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	pkgauth "github.com/shiftsorted/shiftsorted-backend/pkg/auth"
	"github.com/shiftsorted/shiftsorted-backend/pkg/auth/session"
	"github.com/shiftsorted/shiftsorted-backend/pkg/config"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	"github.com/shiftsorted/shiftsorted-backend/pkg/security"
	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

const invalidCredentialsMessage = "invalid email or password"

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.MoverUser, error)
	CreateCompanyAndOwner(ctx context.Context, company *models.Company, owner *models.MoverUser) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// Service exposes mover account operations.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResponse, error)
	Login(ctx context.Context, input LoginInput) (*AuthResponse, error)
	Refresh(ctx context.Context, input RefreshInput) (*AuthResponse, error)
	Logout(ctx context.Context, accessToken string) error
}

type service struct {
	users       userRepository
	session     sessionManager
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	UserRepo       userRepository
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
	Logger         *logger.Logger
}

// NewService constructs a mover account service.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		users:       params.UserRepo,
		session:     params.SessionManager,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
		logg:        params.Logger,
	}, nil
}

// Register creates a company and its owner account, then signs the
// owner in. New companies start without an active subscription, so
// they stay out of quote searches until billing is set up.
func (s *service) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	prefixes := make([]string, 0, len(input.CoveragePrefixes))
	for _, prefix := range input.CoveragePrefixes {
		if code := types.OutwardCode(prefix); code != "" {
			prefixes = append(prefixes, code)
		}
	}

	company := &models.Company{
		Name:             strings.TrimSpace(input.CompanyName),
		Address:          types.Address{Pincode: strings.TrimSpace(input.Pincode)},
		CoveragePrefixes: pq.StringArray(prefixes),
		IsActive:         true,
	}
	owner := &models.MoverUser{
		Role:         enums.MoverRoleOwner,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		IsActive:     true,
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		owner.Phone = &phone
	}

	if err := s.users.CreateCompanyAndOwner(ctx, company, owner); err != nil {
		if db.IsUniqueViolation(err, "mover_users_email_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "an account with this email already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating mover account")
	}

	logCtx := s.logg.WithCompanyID(ctx, company.ID.String())
	s.logg.Info(logCtx, "mover company registered")

	return s.issueTokens(ctx, owner, time.Now())
}

// Login authenticates a mover and issues a token pair.
func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := s.authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording login")
	}
	user.LastLoggedInAt = &now

	return s.issueTokens(ctx, user, now)
}

// Refresh rotates the refresh token and mints a fresh access token for
// the same account. The old pair stops working immediately.
func (s *service) Refresh(ctx context.Context, input RefreshInput) (*AuthResponse, error) {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, input.AccessToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}

	newAccessID, refreshToken, err := s.session.Rotate(ctx, claims.ID, input.RefreshToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
	}

	user := &models.MoverUser{
		ID:        claims.UserID,
		CompanyID: claims.CompanyID,
		Role:      claims.Role,
	}
	accessToken, err := s.mintFor(user, time.Now(), newAccessID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FromModel(user),
	}, nil
}

// Logout revokes the session behind the presented access token. An
// expired token still logs out cleanly.
func (s *service) Logout(ctx context.Context, accessToken string) error {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, accessToken)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}
	if err := s.session.Revoke(ctx, claims.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking session")
	}
	return nil
}

func (s *service) authenticate(ctx context.Context, email, password string) (*models.MoverUser, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading mover account")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return user, nil
}

func (s *service) issueTokens(ctx context.Context, user *models.MoverUser, now time.Time) (*AuthResponse, error) {
	accessID := session.NewAccessID()
	accessToken, err := s.mintFor(user, now, accessID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing refresh token")
	}
	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FromModel(user),
	}, nil
}

func (s *service) mintFor(user *models.MoverUser, now time.Time, accessID string) (string, error) {
	token, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Role:      user.Role,
		JTI:       accessID,
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}
	return token, nil
}

func validateRegisterInput(input RegisterInput) error {
	if strings.TrimSpace(input.CompanyName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "company_name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if len(input.Password) < 8 {
		return pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 8 characters")
	}
	if types.OutwardCode(input.Pincode) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "pincode is required")
	}
	hasPrefix := false
	for _, prefix := range input.CoveragePrefixes {
		if types.OutwardCode(prefix) != "" {
			hasPrefix = true
			break
		}
	}
	if !hasPrefix {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one coverage prefix is required")
	}
	return nil
}
