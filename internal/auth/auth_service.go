package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	autherrors "go-chms/internal/auth/errors"
	"go-chms/internal/shared/contextutil"
)

const resetTokenTTL = time.Hour

// AccessList answers whether an email may register at all.
type AccessList interface {
	RoleByEmail(ctx context.Context, email string) (string, bool, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	RequestPasswordReset(ctx context.Context, req PasswordResetRequest) error
	ConfirmPasswordReset(ctx context.Context, req PasswordResetConfirmRequest) error
}

type service struct {
	repo       Repository
	accessList AccessList
	tokens     *TokenManager
	logger     *zap.Logger
}

func NewService(repo Repository, accessList AccessList, tokens *TokenManager) Service {
	return &service{
		repo:       repo,
		accessList: accessList,
		tokens:     tokens,
		logger:     zap.L().Named("auth_service"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	email := normalizeEmail(req.Email)

	_, allowed, err := s.accessList.RoleByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, autherrors.ErrAccessPending
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherrors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &Account{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return s.issueToken(account)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	email := normalizeEmail(req.Email)

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}

	return s.issueToken(account)
}

// RequestPasswordReset always reports success to the caller; whether an
// account exists for the email must not be observable from outside.
func (s *service) RequestPasswordReset(ctx context.Context, req PasswordResetRequest) error {
	email := normalizeEmail(req.Email)

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return nil
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, email, token, expiresAt); err != nil {
		return err
	}

	// Delivery is out of band. The token lands in the log for the operator
	// until a mailer is wired up.
	contextutil.GetLogger(ctx, s.logger).Info("password reset token issued",
		zap.String("email", email),
		zap.String("token", token),
	)
	return nil
}

func (s *service) ConfirmPasswordReset(ctx context.Context, req PasswordResetConfirmRequest) error {
	account, err := s.repo.FindByResetToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if account == nil || account.ResetToken == nil {
		return autherrors.ErrInvalidResetToken
	}
	if account.ResetTokenExpiresAt == nil || time.Now().After(*account.ResetTokenExpiresAt) {
		return autherrors.ErrResetTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, account.ID.String(), string(hash))
}

func (s *service) issueToken(account *Account) (*TokenResponse, error) {
	token, expiresAt, err := s.tokens.Generate(account.ID, account.Email)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Email:     account.Email,
	}, nil
}
