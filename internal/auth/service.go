package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/internal/common"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

const minPasswordLength = 8

// SignupRequest carries the signup form fields.
type SignupRequest struct {
	Name     string
	Email    string
	Aadhaar  string
	Password string
	UserType string
}

type Service struct {
	users    repository.UserRepository
	sessions *SessionStore
	log      *slog.Logger
}

func NewService(users repository.UserRepository, sessions *SessionStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, sessions: sessions, log: logger}
}

// Signup validates the form, hashes the password and creates the account.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*entity.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Aadhaar = strings.TrimSpace(req.Aadhaar)

	v := common.NewValidator().
		Field("name", req.Name, common.Required).
		Field("email", req.Email, common.Required, common.Email).
		Field("aadhaar", req.Aadhaar, common.Required, common.Aadhaar).
		Field("password", req.Password, common.Required, func(f string, val interface{}) *common.ValidationError {
			return common.MinLength(f, val, minPasswordLength)
		})
	if v.HasErrors() {
		return nil, common.NewAppError("SIGNUP_INVALID", v.ErrorMessage(), common.ErrValidation)
	}

	if existing, err := s.users.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, common.NewAppError("SIGNUP_DUPLICATE", "an account with this email already exists", common.ErrDuplicate)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, common.WrapError(err, "hash password")
	}

	user, err := s.users.Create(ctx, &repository.NewUser{
		Name:         req.Name,
		Email:        req.Email,
		Aadhaar:      req.Aadhaar,
		PasswordHash: hash,
		UserType:     req.UserType,
	})
	if err != nil {
		// aadhaar and email both carry unique constraints
		return nil, common.NewAppError("SIGNUP_FAILED", "could not create account", err)
	}
	s.log.Info("user signed up", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login checks credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", common.ErrUnauthorized
	}
	if !CheckPassword(user.PasswordHash, password) {
		s.log.Warn("login rejected", "email", email)
		return nil, "", common.ErrUnauthorized
	}
	token := s.sessions.Issue(user.ID)
	s.log.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// Logout revokes the session token.
func (s *Service) Logout(token string) {
	s.sessions.Revoke(token)
}

// Authenticate resolves a session token to a user ID.
func (s *Service) Authenticate(token string) (uuid.UUID, bool) {
	return s.sessions.Lookup(token)
}

// Sessions exposes the underlying store, for cookie max-age wiring.
func (s *Service) Sessions() *SessionStore {
	return s.sessions
}
