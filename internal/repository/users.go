package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/gen/ent"
	entuser "github.com/gstsuite/invoice-analyzer/gen/ent/user"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

// NewUser wraps parameters for creating an account.
type NewUser struct {
	Name         string
	Email        string
	Aadhaar      string
	PasswordHash string
	UserType     string
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, u *NewUser) (*entity.User, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row, err := r.client.User.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUser(row), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row, err := r.client.User.Query().
		Where(entuser.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toUser(row), nil
}

func (r *userRepository) Create(ctx context.Context, u *NewUser) (*entity.User, error) {
	create := r.client.User.Create().
		SetName(u.Name).
		SetEmail(u.Email).
		SetAadhaar(u.Aadhaar).
		SetPasswordHash(u.PasswordHash)
	if u.UserType != "" {
		create = create.SetUserType(u.UserType)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "email", u.Email, "error", err)
		return nil, err
	}
	return toUser(row), nil
}
