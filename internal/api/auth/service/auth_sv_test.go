package authService

import (
	"testing"
	"time"

	"FinTrack/internal/api/auth"
	authRepository "FinTrack/internal/api/auth/repository"
	"FinTrack/internal/api/category"
	"FinTrack/internal/entity"
	"FinTrack/pkg/bcrypt"
	"FinTrack/pkg/log"
	"FinTrack/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type stubUsers struct {
	byID       map[string]entity.User
	byUsername map[string]entity.User
	byEmail    map[string]entity.User
	created    []entity.User
	deleted    []string
}

func (s *stubUsers) CreateUser(_ context.Context, user entity.User) error {
	s.created = append(s.created, user)
	return nil
}

func (s *stubUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUsers) GetByUsername(_ context.Context, username string) (entity.User, error) {
	user, ok := s.byUsername[username]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUsers) UpdateUser(context.Context, entity.User) error { return nil }

func (s *stubUsers) UpdateUserPassword(context.Context, string, string) error { return nil }

func (s *stubUsers) DeleteUser(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubAuthRepository struct {
	users *stubUsers
}

func (r *stubAuthRepository) NewClient(bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    r.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type stubCategorySeeder struct {
	seededFor []string
}

func (s *stubCategorySeeder) CreateCategory(context.Context, category.CreateCategoryRequest) error {
	return nil
}

func (s *stubCategorySeeder) CreateDefaultCategories(_ context.Context, userID string) error {
	s.seededFor = append(s.seededFor, userID)
	return nil
}

func (s *stubCategorySeeder) GetCategoryByID(context.Context, string, string) (entity.Category, error) {
	return entity.Category{}, category.ErrCategoryNotFound
}

func (s *stubCategorySeeder) GetCategoriesByUserID(context.Context, string) ([]entity.Category, error) {
	return nil, nil
}

func (s *stubCategorySeeder) UpdateCategory(context.Context, category.UpdateCategoryRequest) error {
	return nil
}

func (s *stubCategorySeeder) DeleteCategory(context.Context, string, string) error { return nil }

type stubRedis struct {
	tokens map[string]string
}

func newStubRedis() *stubRedis {
	return &stubRedis{tokens: make(map[string]string)}
}

func (s *stubRedis) SetRefreshToken(_ context.Context, userID string, token string, _ time.Duration) error {
	s.tokens[userID] = token
	return nil
}

func (s *stubRedis) GetRefreshToken(_ context.Context, userID string) (string, error) {
	token, ok := s.tokens[userID]
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return token, nil
}

func (s *stubRedis) DeleteRefreshToken(_ context.Context, userID string) error {
	delete(s.tokens, userID)
	return nil
}

func newTestService(t *testing.T, users *stubUsers) (IAuthService, *stubUsers, *stubCategorySeeder, *stubRedis) {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_TOKEN_SECRET", "test-refresh-secret")

	seeder := &stubCategorySeeder{}
	redisStub := newStubRedis()
	svc := New(log.NewLogger(), &stubAuthRepository{users: users}, seeder, redisStub, bcrypt.New(), utils.New())
	return svc, users, seeder, redisStub
}

func registerRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		Username: "tester",
		Email:    "tester@example.com",
		FullName: "Test User",
		Password: "secret123",
	}
}

func TestRegister(t *testing.T) {
	svc, users, seeder, redisStub := newTestService(t, &stubUsers{})

	tokens, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "bearer", tokens.TokenType)

	require.Len(t, users.created, 1)
	created := users.created[0]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "RUB", created.DefaultCurrency)
	assert.NotEqual(t, "secret123", created.Password)

	assert.Equal(t, []string{created.ID}, seeder.seededFor)
	assert.Equal(t, tokens.RefreshToken, redisStub.tokens[created.ID])
}

func TestRegister_WeakPassword(t *testing.T) {
	svc, users, _, _ := newTestService(t, &stubUsers{})

	req := registerRequest()
	req.Password = "onlyletters"

	_, err := svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, auth.ErrWeakPassword)
	assert.Empty(t, users.created)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, _, _, _ := newTestService(t, &stubUsers{
		byUsername: map[string]entity.User{"tester": {ID: "user1", Username: "tester"}},
	})

	_, err := svc.Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, auth.ErrUsernameExists)
}

func TestRegister_InvalidCurrency(t *testing.T) {
	svc, _, _, _ := newTestService(t, &stubUsers{})

	req := registerRequest()
	req.DefaultCurrency = "DOGE"

	_, err := svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, auth.ErrInvalidCurrency)
}

func TestLogin(t *testing.T) {
	hasher := bcrypt.New()
	hashed, err := hasher.HashPassword("secret123")
	require.NoError(t, err)

	svc, _, _, _ := newTestService(t, &stubUsers{
		byUsername: map[string]entity.User{
			"tester": {ID: "user1", Username: "tester", Email: "tester@example.com", Password: hashed},
		},
	})

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{Username: "tester", Password: "secret123"})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	hasher := bcrypt.New()
	hashed, err := hasher.HashPassword("secret123")
	require.NoError(t, err)

	svc, _, _, _ := newTestService(t, &stubUsers{
		byUsername: map[string]entity.User{
			"tester": {ID: "user1", Username: "tester", Password: hashed},
		},
	})

	_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "tester", Password: "wrong"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _, _, _ := newTestService(t, &stubUsers{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_RotatesToken(t *testing.T) {
	users := &stubUsers{byID: map[string]entity.User{}}
	svc, _, _, redisStub := newTestService(t, users)

	first, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	created := users.created[0]
	users.byID[created.ID] = created

	refreshed, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	assert.NotEmpty(t, refreshed.AccessToken)
	// The stored token is replaced; the old one can no longer be replayed.
	assert.Equal(t, refreshed.RefreshToken, redisStub.tokens[created.ID])
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	svc, _, _, _ := newTestService(t, &stubUsers{})

	_, err := svc.Refresh(context.Background(), "garbage")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_RejectsReplayedToken(t *testing.T) {
	users := &stubUsers{byID: map[string]entity.User{}}
	svc, _, _, _ := newTestService(t, users)

	first, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	created := users.created[0]
	users.byID[created.ID] = created

	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	// Using the pre-rotation token again must fail.
	_, err = svc.Refresh(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestChangePassword_RejectsSamePassword(t *testing.T) {
	hasher := bcrypt.New()
	hashed, err := hasher.HashPassword("secret123")
	require.NoError(t, err)

	svc, _, _, _ := newTestService(t, &stubUsers{
		byID: map[string]entity.User{
			"user1": {ID: "user1", Password: hashed},
		},
	})

	err = svc.ChangePassword(context.Background(), "user1", auth.ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "secret123",
	})

	assert.ErrorIs(t, err, auth.ErrPasswordSame)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	hasher := bcrypt.New()
	hashed, err := hasher.HashPassword("secret123")
	require.NoError(t, err)

	svc, _, _, _ := newTestService(t, &stubUsers{
		byID: map[string]entity.User{
			"user1": {ID: "user1", Password: hashed},
		},
	})

	err = svc.ChangePassword(context.Background(), "user1", auth.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "another123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestDeleteAccount_RevokesRefreshToken(t *testing.T) {
	svc, users, _, redisStub := newTestService(t, &stubUsers{})
	redisStub.tokens["user1"] = "stored-token"

	err := svc.DeleteAccount(context.Background(), "user1")
	require.NoError(t, err)

	assert.Equal(t, []string{"user1"}, users.deleted)
	assert.Empty(t, redisStub.tokens)
}
