package usecase

import (
	"context"
	"testing"
	"time"

	"medimarket/config"
	"medimarket/internal/delivery/dto"
	"medimarket/internal/domain/entity"
	"medimarket/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authTestEnv struct {
	uc                AuthUsecase
	userRepo          *fakeUserRepo
	profileRepo       *fakeProfileRepo
	userRoleRepo      *fakeUserRoleRepo
	hospitalAdminRepo *fakeHospitalAdminRepo
	auditRepo         *fakeAuditLogRepo
	jwtService        *jwt.JWTService
	deps              testDeps
	redisKeys         func() []string
}

func newAuthUsecaseForTest(t *testing.T) *authTestEnv {
	t.Helper()

	db, mock := newTestDB(t)
	redisClient, mr := newTestRedis(t)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	userRoleRepo := newFakeUserRoleRepo()
	hospitalAdminRepo := newFakeHospitalAdminRepo()
	auditRepo := newFakeAuditLogRepo()

	uc := NewAuthUsecase(db, newTestLogger(), userRepo, profileRepo, userRoleRepo, hospitalAdminRepo,
		newTestAuditService(db, auditRepo), jwtService, redisClient)

	return &authTestEnv{
		uc:                uc,
		userRepo:          userRepo,
		profileRepo:       profileRepo,
		userRoleRepo:      userRoleRepo,
		hospitalAdminRepo: hospitalAdminRepo,
		auditRepo:         auditRepo,
		jwtService:        jwtService,
		deps:              testDeps{mock: mock},
		redisKeys:         func() []string { return mr.Keys() },
	}
}

func (e *authTestEnv) seedUser(t *testing.T, email, password string) *entity.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
		FullName: "Test User",
		IsActive: true,
	}
	e.userRepo.users[user.ID] = user
	return user
}

func countKeysWithPrefix(keys []string, prefix string) int {
	n := 0
	for _, k := range keys {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func TestAuthUsecase_Register(t *testing.T) {
	env := newAuthUsecaseForTest(t)

	env.deps.mock.ExpectBegin()
	env.deps.mock.ExpectCommit()

	resp, err := env.uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "Patient@Example.com",
		Password: "supersecret",
		FullName: "Anita Desai",
		Phone:    "9876543210",
	})
	require.NoError(t, err)

	// Email is stored lowercase
	assert.Equal(t, "patient@example.com", resp.Email)

	user, err := env.userRepo.FindByEmail(nil, "patient@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "supersecret", user.Password)

	// Profile and default role are provisioned with the user
	profile, _ := env.profileRepo.FindByUserID(nil, user.ID)
	require.NotNil(t, profile)
	assert.Equal(t, "9876543210", profile.Phone)
	assert.Equal(t, 1, env.userRoleRepo.countRole(user.ID, entity.RoleUser))

	assert.Contains(t, env.auditRepo.actions(), entity.AuditActionUserRegister)
}

func TestAuthUsecase_LoginStoresTokens(t *testing.T) {
	env := newAuthUsecaseForTest(t)
	env.seedUser(t, "patient@example.com", "supersecret")

	resp, err := env.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "patient@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), resp.ExpiresIn)

	// One access and one refresh key in Redis
	keys := env.redisKeys()
	assert.Equal(t, 1, countKeysWithPrefix(keys, "access_token:"))
	assert.Equal(t, 1, countKeysWithPrefix(keys, "refresh_token:"))

	assert.Contains(t, env.auditRepo.actions(), entity.AuditActionUserLogin)
}

func TestAuthUsecase_LoginWrongPassword(t *testing.T) {
	env := newAuthUsecaseForTest(t)
	env.seedUser(t, "patient@example.com", "supersecret")

	_, err := env.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "patient@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, env.redisKeys())
}

func TestAuthUsecase_LoginUnknownEmail(t *testing.T) {
	env := newAuthUsecaseForTest(t)

	_, err := env.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_LoginInactiveUser(t *testing.T) {
	env := newAuthUsecaseForTest(t)
	user := env.seedUser(t, "patient@example.com", "supersecret")
	user.IsActive = false

	_, err := env.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "patient@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestAuthUsecase_RefreshTokenRotates(t *testing.T) {
	env := newAuthUsecaseForTest(t)
	env.seedUser(t, "patient@example.com", "supersecret")

	login, err := env.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "patient@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	refreshed, err := env.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The old refresh token is single-use
	_, err = env.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthUsecase_RefreshTokenRejectsAccessToken(t *testing.T) {
	env := newAuthUsecaseForTest(t)
	env.seedUser(t, "patient@example.com", "supersecret")

	login, err := env.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "patient@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = env.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthUsecase_RefreshTokenGarbage(t *testing.T) {
	env := newAuthUsecaseForTest(t)

	_, err := env.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: "not-a-jwt",
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthUsecase_LogoutDeletesTokens(t *testing.T) {
	env := newAuthUsecaseForTest(t)
	user := env.seedUser(t, "patient@example.com", "supersecret")

	login, err := env.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "patient@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	accessClaims, err := env.jwtService.ValidateToken(login.AccessToken)
	require.NoError(t, err)
	refreshClaims, err := env.jwtService.ValidateToken(login.RefreshToken)
	require.NoError(t, err)

	err = env.uc.Logout(context.Background(), user.ID, accessClaims.TokenID, refreshClaims.TokenID)
	require.NoError(t, err)
	assert.Empty(t, env.redisKeys())
	assert.Contains(t, env.auditRepo.actions(), entity.AuditActionUserLogout)
}

func TestAuthUsecase_GetSession(t *testing.T) {
	env := newAuthUsecaseForTest(t)
	user := env.seedUser(t, "admin@example.com", "supersecret")

	env.profileRepo.profiles[user.ID] = &entity.Profile{
		ID:       uuid.New(),
		UserID:   user.ID,
		FullName: "Test User",
	}
	env.userRoleRepo.roles = append(env.userRoleRepo.roles,
		entity.UserRole{ID: uuid.New(), UserID: user.ID, Role: entity.RoleUser},
		entity.UserRole{ID: uuid.New(), UserID: user.ID, Role: entity.RoleHospitalAdmin},
	)
	hospitalID := uuid.New()
	env.hospitalAdminRepo.links = append(env.hospitalAdminRepo.links, entity.HospitalAdmin{
		ID:         uuid.New(),
		UserID:     user.ID,
		HospitalID: hospitalID,
	})

	session, err := env.uc.GetSession(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.Email, session.User.Email)
	assert.ElementsMatch(t, []string{"user", "hospital_admin"}, session.Roles)
	require.NotNil(t, session.HospitalID)
	assert.Equal(t, hospitalID, *session.HospitalID)
}

func TestAuthUsecase_GetSessionPlainUser(t *testing.T) {
	env := newAuthUsecaseForTest(t)
	user := env.seedUser(t, "patient@example.com", "supersecret")

	env.userRoleRepo.roles = append(env.userRoleRepo.roles,
		entity.UserRole{ID: uuid.New(), UserID: user.ID, Role: entity.RoleUser},
	)

	session, err := env.uc.GetSession(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"user"}, session.Roles)
	assert.Nil(t, session.HospitalID)
}

func TestAuthUsecase_GetSessionNoRoleRowsDefaultsToUser(t *testing.T) {
	env := newAuthUsecaseForTest(t)
	user := env.seedUser(t, "patient@example.com", "supersecret")

	// No user_roles rows at all: the account still acts as a plain user
	session, err := env.uc.GetSession(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"user"}, session.Roles)
	assert.Nil(t, session.HospitalID)
}

func TestAuthUsecase_GetSessionUnknownUser(t *testing.T) {
	env := newAuthUsecaseForTest(t)

	_, err := env.uc.GetSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
