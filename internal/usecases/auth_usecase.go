package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"stayhub.admin/internal/domain/entities"
	domainerrors "stayhub.admin/internal/domain/errors"
	"stayhub.admin/internal/domain/repositories"
	"stayhub.admin/pkg/crypto"
	"stayhub.admin/pkg/jwt"
	"stayhub.admin/pkg/logger"
)

// AuthUsecase handles console staff authentication
type AuthUsecase struct {
	adminRepo  repositories.AdminUserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(adminRepo repositories.AdminUserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies staff credentials and issues an access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.LoginResult, error) {
	admin, err := u.adminRepo.GetActiveByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateAccessToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, err
	}

	if err := u.adminRepo.TouchLastLogin(ctx, admin.ID); err != nil {
		// Login still succeeds; the timestamp is advisory.
		logger.Warn(ctx, "failed to touch last login", zap.String("admin_id", admin.ID.String()), zap.Error(err))
	}

	return &entities.LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		Admin:       admin,
	}, nil
}

// GetMe returns the authenticated staff account
func (u *AuthUsecase) GetMe(ctx context.Context, adminID uuid.UUID) (*entities.AdminUser, error) {
	return u.adminRepo.GetByID(ctx, adminID)
}
