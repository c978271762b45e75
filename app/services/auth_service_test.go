package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAdmins(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == models.RoleAdmin {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID, newPasswordHash string) error {
	if u, ok := r.users[userID]; ok {
		u.Password = newPasswordHash
	}
	return nil
}

func (r *fakeUserRepo) MarkVerified(ctx context.Context, userID string) error {
	if u, ok := r.users[userID]; ok {
		u.IsVerified = true
	}
	return nil
}

type fakeTokenRepo struct {
	verifications map[string]*models.VerificationToken
	resets        map[string]*models.PasswordResetToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		verifications: map[string]*models.VerificationToken{},
		resets:        map[string]*models.PasswordResetToken{},
	}
}

func (r *fakeTokenRepo) CreateVerificationToken(ctx context.Context, token *models.VerificationToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	r.verifications[token.Token] = token
	return nil
}

func (r *fakeTokenRepo) FindVerificationToken(ctx context.Context, token string) (*models.VerificationToken, error) {
	return r.verifications[token], nil
}

func (r *fakeTokenRepo) DeleteVerificationToken(ctx context.Context, id string) error {
	for k, t := range r.verifications {
		if t.ID == id {
			delete(r.verifications, k)
		}
	}
	return nil
}

func (r *fakeTokenRepo) CreatePasswordResetToken(ctx context.Context, token *models.PasswordResetToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	r.resets[token.Token] = token
	return nil
}

func (r *fakeTokenRepo) FindPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	return r.resets[token], nil
}

func (r *fakeTokenRepo) DeletePasswordResetTokensForUser(ctx context.Context, userID string) error {
	for k, t := range r.resets {
		if t.UserID == userID {
			delete(r.resets, k)
		}
	}
	return nil
}

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	svc := NewAuthService(userRepo, tokenRepo, nil, "test-secret", "http://localhost:8080")
	return svc, userRepo, tokenRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, tokenRepo := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &models.User{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Password:  "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "supersecret", user.Password, "password must be stored hashed")
	assert.Len(t, tokenRepo.verifications, 1)

	token, loggedIn, err := svc.Login(ctx, "asha@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, models.RoleCustomer, claims["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.User{Email: "asha@example.com", Password: "x12345678"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &models.User{Email: "asha@example.com", Password: "y12345678"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.User{Email: "asha@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyEmailFlow(t *testing.T) {
	svc, userRepo, tokenRepo := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &models.User{Email: "asha@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.False(t, userRepo.users[user.ID].IsVerified)

	var token string
	for k := range tokenRepo.verifications {
		token = k
	}

	require.NoError(t, svc.VerifyEmail(ctx, token))
	assert.True(t, userRepo.users[user.ID].IsVerified)
	assert.Empty(t, tokenRepo.verifications, "token is single-use")

	assert.ErrorIs(t, svc.VerifyEmail(ctx, token), ErrTokenInvalid)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _, tokenRepo := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.User{Email: "asha@example.com", Password: "oldpassword"})
	require.NoError(t, err)

	// An unknown address does not leak account existence.
	require.NoError(t, svc.RequestPasswordReset(ctx, "nobody@example.com"))
	assert.Empty(t, tokenRepo.resets)

	require.NoError(t, svc.RequestPasswordReset(ctx, "asha@example.com"))
	require.Len(t, tokenRepo.resets, 1)

	var token string
	for k := range tokenRepo.resets {
		token = k
	}

	require.NoError(t, svc.ResetPassword(ctx, token, "newpassword1"))
	assert.Empty(t, tokenRepo.resets)

	_, _, err = svc.Login(ctx, "asha@example.com", "oldpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "asha@example.com", "newpassword1")
	assert.NoError(t, err)
}
