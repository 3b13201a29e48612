package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/digital_banking/internal/apperrors"
	"github.com/SscSPs/digital_banking/internal/core/domain"
	portsrepo "github.com/SscSPs/digital_banking/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/digital_banking/internal/core/ports/services"
	"github.com/SscSPs/digital_banking/internal/dto"
	"github.com/SscSPs/digital_banking/internal/utils"
)

type authService struct {
	BaseService
	userRepo  portsrepo.UserRepositoryFacade
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates the credential and token service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Login for unknown user", slog.String("username", req.Username))
			return nil, apperrors.ErrAuthenticationFailed
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogWarn(ctx, "Login with wrong password", slog.Int64("user_id", user.ID))
		return nil, apperrors.ErrAuthenticationFailed
	}

	token, expiresAt, err := utils.GenerateJWT(user.ID, user.Username, user.Authorities(), s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign JWT token")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// parseRole accepts ADMIN, USER and their ROLE_ prefixed forms, case-insensitively.
func parseRole(roles []string) (domain.Role, error) {
	if len(roles) == 0 || strings.TrimSpace(roles[0]) == "" {
		return domain.RoleUser, nil
	}
	role := domain.Role(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(roles[0])), "ROLE_"))
	if !role.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, roles[0])
	}
	return role, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password required", apperrors.ErrValidation)
	}

	role, err := parseRole(req.Roles)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateUser
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing user")
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if errors.Is(err, apperrors.ErrValidation) {
		return nil, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	saved, err := s.userRepo.SaveUser(ctx, domain.User{
		Username:     username,
		Email:        username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicateUser
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", saved.ID), slog.String("role", string(saved.Role)))
	return saved, nil
}

func (s *authService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}
