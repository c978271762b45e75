package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopmitra/shopmitra/app/configs"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL        = 24 * time.Hour
	verificationTTL = 48 * time.Hour
	resetTTL        = 1 * time.Hour
)

type AuthService struct {
	userRepo   repositories.UserRepositoryImpl
	tokenRepo  repositories.TokenRepository
	mailer     *Mailer
	jwtSecret  []byte
	appBaseURL string
}

func NewAuthService(userRepo repositories.UserRepositoryImpl, tokenRepo repositories.TokenRepository, mailer *Mailer, jwtSecret, appBaseURL string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		mailer:     mailer,
		jwtSecret:  []byte(jwtSecret),
		appBaseURL: appBaseURL,
	}
}

func (s *AuthService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user.Role = models.RoleCustomer
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	vt := &models.VerificationToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(verificationTTL),
	}
	if err := s.tokenRepo.CreateVerificationToken(ctx, vt); err != nil {
		return nil, fmt.Errorf("failed to create verification token: %w", err)
	}

	// Mail delivery is best-effort; registration succeeds regardless.
	if s.mailer != nil {
		link := fmt.Sprintf("%s/api/auth/verify?token=%s", s.appBaseURL, token)
		body := fmt.Sprintf("<p>Welcome to Shopmitra!</p><p><a href=%q>Verify your email</a></p>", link)
		if err := s.mailer.SendHTMLEmail(user.Email, "Verify your email", body); err != nil {
			configs.Logger.Warn().Err(err).Str("user_id", user.ID).Msg("verification mail failed")
		}
	}

	return user, nil
}

// Login checks credentials and issues a signed bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	vt, err := s.tokenRepo.FindVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to fetch token: %w", err)
	}
	if vt == nil {
		return ErrTokenInvalid
	}

	if err := s.userRepo.MarkVerified(ctx, vt.UserID); err != nil {
		return fmt.Errorf("failed to mark verified: %w", err)
	}
	if err := s.tokenRepo.DeleteVerificationToken(ctx, vt.ID); err != nil {
		configs.Logger.Warn().Err(err).Msg("failed to delete used verification token")
	}
	return nil
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		// Do not reveal whether the address exists.
		return nil
	}

	token, err := randomToken()
	if err != nil {
		return err
	}
	rt := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTTL),
	}
	if err := s.tokenRepo.CreatePasswordResetToken(ctx, rt); err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	if s.mailer != nil {
		link := fmt.Sprintf("%s/reset-password?token=%s", s.appBaseURL, token)
		body := fmt.Sprintf("<p>Reset your password: <a href=%q>click here</a>. The link expires in one hour.</p>", link)
		if err := s.mailer.SendHTMLEmail(user.Email, "Password reset", body); err != nil {
			configs.Logger.Warn().Err(err).Str("user_id", user.ID).Msg("reset mail failed")
		}
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	rt, err := s.tokenRepo.FindPasswordResetToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to fetch token: %w", err)
	}
	if rt == nil {
		return ErrTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, rt.UserID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return s.tokenRepo.DeletePasswordResetTokensForUser(ctx, rt.UserID)
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
