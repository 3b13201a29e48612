package services

import (
	"context"

	"github.com/SscSPs/digital_banking/internal/core/domain"
	"github.com/SscSPs/digital_banking/internal/dto"
)

// AuthSvcFacade defines credential based authentication and registration.
type AuthSvcFacade interface {
	// Login returns apperrors.ErrAuthenticationFailed for unknown users and wrong passwords alike.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Register returns apperrors.ErrDuplicateUser when the username is already registered.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Profile loads the stored user behind an authenticated token.
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}
