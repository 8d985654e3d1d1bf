package service

import (
	"context"
	"errors"
	"strings"

	"jumatrek/internal/admins/repository"
	"jumatrek/internal/auth"
	"jumatrek/internal/store"
	"jumatrek/internal/validation"
	apperrors "jumatrek/pkg/errors"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/model"
	"jumatrek/pkg/sanitizer"
)

const TokenTypeBearer = "Bearer"

// Unknown emails are checked against these so a miss costs one full KDF run,
// like a wrong password does.
var (
	decoySalt = strings.Repeat("0", 2*auth.SaltBytes)
	decoyHash = strings.Repeat("0", 2*auth.KeyLength)
)

type AdminService interface {
	CreateUser(ctx context.Context, req *model.CreateAdminRequest) (string, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type adminService struct {
	repo        repository.AdminUserRepository
	validator   *validation.Validator
	tokens      *auth.TokenIssuer
	legacyToken string
	verify      func(password, salt, hash string) bool
	log         *logger.Logger
}

// NewAdminService issues signed tokens when tokens is non-nil, and the static
// legacyToken otherwise.
func NewAdminService(
	repo repository.AdminUserRepository,
	validator *validation.Validator,
	tokens *auth.TokenIssuer,
	legacyToken string,
	log *logger.Logger,
) AdminService {
	return &adminService{
		repo:        repo,
		validator:   validator,
		tokens:      tokens,
		legacyToken: legacyToken,
		verify:      auth.VerifyPassword,
		log:         log,
	}
}

func (s *adminService) CreateUser(ctx context.Context, req *model.CreateAdminRequest) (string, error) {
	req.Email = sanitizer.SanitizeEmail(req.Email)

	if err := s.validator.Validate(req); err != nil {
		s.log.Warn("Admin user validation failed", "email", req.Email, "error", err)
		return "", err
	}

	hash, salt, err := auth.HashPassword(req.Password, "")
	if err != nil {
		return "", apperrors.Internal("Failed to create admin user", err)
	}

	user := &model.AdminUser{
		Email:        req.Email,
		PasswordHash: hash,
		PasswordSalt: salt,
		FullName:     req.FullName,
		Role:         model.DefaultAdminRole,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			s.log.Warn("Admin user already exists", "email", req.Email)
			return "", apperrors.Conflict("Admin user with this email already exists")
		}
		s.log.Error("Failed to create admin user", "email", req.Email, "error", err)
		return "", apperrors.Internal("Failed to create admin user", err)
	}

	s.log.Info("Admin user created successfully", "id", id, "email", user.Email)
	return id, nil
}

// Login answers unknown emails and wrong passwords identically.
func (s *adminService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	req.Email = sanitizer.SanitizeEmail(req.Email)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Error("Failed to look up admin user", "email", req.Email, "error", err)
			return nil, apperrors.Internal("Failed to log in", err)
		}
		s.verify(req.Password, decoySalt, decoyHash)
		s.log.Warn("Admin login failed", "email", req.Email, "reason", "unknown email")
		return nil, invalidCredentials()
	}

	if !s.verify(req.Password, user.PasswordSalt, user.PasswordHash) {
		s.log.Warn("Admin login failed", "email", req.Email, "reason", "password mismatch")
		return nil, invalidCredentials()
	}

	resp := &model.LoginResponse{
		TokenType: TokenTypeBearer,
		User:      model.AdminUserView{ID: user.ID, Email: user.Email},
	}

	if s.tokens != nil {
		token, expiresAt, err := s.tokens.Issue(user)
		if err != nil {
			s.log.Error("Failed to issue token", "email", user.Email, "error", err)
			return nil, apperrors.Internal("Failed to log in", err)
		}
		resp.Token = token
		resp.ExpiresAt = &expiresAt
	} else {
		resp.Token = s.legacyToken
	}

	s.log.Info("Admin logged in", "id", user.ID, "email", user.Email, "signed_token", s.tokens != nil)
	return resp, nil
}

func invalidCredentials() error {
	return apperrors.Unauthorized("Invalid credentials")
}
