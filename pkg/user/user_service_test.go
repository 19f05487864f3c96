package user

import (
	"BeerExpiryTracker/domain"
	"BeerExpiryTracker/entities"
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := f.GetUserByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeJWTService struct{}

func (fakeJWTService) GenerateTokenUser(userId string, role string) string { return "test-token" }

func (fakeJWTService) ValidateTokenUser(token string) (*jwt.Token, error) { return nil, nil }

func (fakeJWTService) GetUserIDByToken(token string) (string, string, error) { return "", "", nil }

func registerAlice(t *testing.T, service UserService) {
	t.Helper()
	require.NoError(t, service.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	}))
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})

	registerAlice(t, service)

	stored, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct horse")))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})
	registerAlice(t, service)

	err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailUsed)
}

func TestLoginReturnsToken(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})
	registerAlice(t, service)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "test-token", res.Token)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "alice@example.com", res.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})
	registerAlice(t, service)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Username: "nobody",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginUpdatesDeviceToken(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})
	registerAlice(t, service)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Username:    "alice",
		Password:    "correct horse",
		DeviceToken: "fcm-token-1",
	})
	require.NoError(t, err)

	stored, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "fcm-token-1", stored.DeviceToken)
}

func TestUpdateDeviceToken(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, fakeJWTService{})
	registerAlice(t, service)

	stored, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)

	err = service.UpdateDeviceToken(context.Background(), stored.ID.String(), domain.UpdateDeviceTokenRequest{
		DeviceToken: "fcm-token-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "fcm-token-2", stored.DeviceToken)

	err = service.UpdateDeviceToken(context.Background(), uuid.NewString(), domain.UpdateDeviceTokenRequest{
		DeviceToken: "fcm-token-3",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
