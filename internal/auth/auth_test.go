package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstsuite/invoice-analyzer/internal/common"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)
	assert.True(t, CheckPassword(hash, "correct horse battery"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword("not-a-hash", "anything"))
}

func TestSessionStore(t *testing.T) {
	s := NewSessionStore(time.Hour)
	userID := uuid.New()

	token := s.Issue(userID)
	got, ok := s.Lookup(token)
	require.True(t, ok)
	assert.Equal(t, userID, got)

	_, ok = s.Lookup("bogus-token")
	assert.False(t, ok)

	s.Revoke(token)
	_, ok = s.Lookup(token)
	assert.False(t, ok)
}

func TestSessionStoreExpiry(t *testing.T) {
	s := NewSessionStore(10 * time.Millisecond)
	token := s.Issue(uuid.New())

	time.Sleep(25 * time.Millisecond)
	_, ok := s.Lookup(token)
	assert.False(t, ok, "expired session must not resolve")
}

// fakeUsers is an in-memory UserRepository for service tests.
type fakeUsers struct {
	byEmail map[string]*entity.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*entity.User{}}
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, nu *repository.NewUser) (*entity.User, error) {
	u := &entity.User{
		ID:           uuid.New(),
		Name:         nu.Name,
		Email:        nu.Email,
		Aadhaar:      nu.Aadhaar,
		UserType:     nu.UserType,
		PasswordHash: nu.PasswordHash,
	}
	f.byEmail[nu.Email] = u
	return u, nil
}

func validSignup() SignupRequest {
	return SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Aadhaar:  "123412341234",
		Password: "s3cret-enough",
	}
}

func TestSignupAndLogin(t *testing.T) {
	users := newFakeUsers()
	svc := NewService(users, NewSessionStore(time.Hour), nil)
	ctx := context.Background()

	user, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret-enough", user.PasswordHash)

	got, token, err := svc.Login(ctx, "ASHA@example.com", "s3cret-enough")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	resolved, ok := svc.Authenticate(token)
	require.True(t, ok)
	assert.Equal(t, user.ID, resolved)

	svc.Logout(token)
	_, ok = svc.Authenticate(token)
	assert.False(t, ok)
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignupRequest)
	}{
		{name: "short password", mutate: func(r *SignupRequest) { r.Password = "short" }},
		{name: "bad aadhaar", mutate: func(r *SignupRequest) { r.Aadhaar = "12345" }},
		{name: "bad email", mutate: func(r *SignupRequest) { r.Email = "not-an-email" }},
		{name: "empty name", mutate: func(r *SignupRequest) { r.Name = "  " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeUsers(), NewSessionStore(time.Hour), nil)
			req := validSignup()
			tt.mutate(&req)
			_, err := svc.Signup(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUsers(), NewSessionStore(time.Hour), nil)
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	_, err = svc.Signup(ctx, validSignup())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicate)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(newFakeUsers(), NewSessionStore(time.Hour), nil)
	ctx := context.Background()
	_, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, _, err = svc.Login(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
