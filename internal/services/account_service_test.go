package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"substore/internal/models/db_models"
	"substore/internal/models/request_models"
	"substore/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail  *db_models.Account
	byID     *db_models.Account
	inserted []*db_models.Account
	updates  map[string]interface{}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	f.inserted = append(f.inserted, account)
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return f.byID, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.byEmail, nil
}

func (f *fakeAccountRepo) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	f.updates = fields
	return nil
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	repo := &fakeAccountRepo{byEmail: &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Email:        "test@example.com",
		PasswordHash: hash,
		Role:         "user",
	}}
	svc := NewAccountService(repo)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "test@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	repo := &fakeAccountRepo{byEmail: &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		PasswordHash: hash,
	}}
	svc := NewAccountService(repo)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	svc := NewAccountService(&fakeAccountRepo{})

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "missing@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestCreateAccount(t *testing.T) {
	repo := &fakeAccountRepo{}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Test User",
		Email:       "new@example.com",
		Password:    "secret123",
	})
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	account := repo.inserted[0]
	assert.Equal(t, "new@example.com", account.Email)
	assert.Equal(t, "user", account.Role)
	// Stored hashed, never plaintext.
	assert.NotEqual(t, "secret123", account.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "secret123"))
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := &fakeAccountRepo{byEmail: &db_models.Account{Email: "taken@example.com"}}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Test User",
		Email:       "taken@example.com",
		Password:    "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	assert.Empty(t, repo.inserted)
}

func TestUpdateProfileOnlyProvidedFields(t *testing.T) {
	repo := &fakeAccountRepo{}
	svc := NewAccountService(repo)

	phone := "9876543210"
	err := svc.UpdateProfile(context.Background(), uuid.NewString(), request_models.UpdateProfileRequest{
		Phone: &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"phone": "9876543210"}, repo.updates)
}
