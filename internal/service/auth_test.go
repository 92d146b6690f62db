package service

import (
	"context"
	"testing"

	"wardrobe-rental-backend/internal/domain"
	"wardrobe-rental-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "user-1", Email: "staff@example.com", PasswordHash: hashPassword(t, "correct-horse")}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(userRepo, tokens, new(MockEmailService))

		userRepo.On("GetByEmail", ctx, "staff@example.com").Return(user, nil)
		tokens.On("GenerateAccessToken", "user-1", "staff@example.com").Return("access-token", nil)
		tokens.On("GenerateRefreshToken", "user-1", "staff@example.com").Return("refresh-token", nil)

		access, refresh, got, err := svc.Login(ctx, "staff@example.com", "correct-horse")
		assert.NoError(t, err)
		assert.Equal(t, "access-token", access)
		assert.Equal(t, "refresh-token", refresh)
		assert.Equal(t, "user-1", got.ID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTokenManager), new(MockEmailService))
		userRepo.On("GetByEmail", ctx, "staff@example.com").Return(user, nil)

		_, _, _, err := svc.Login(ctx, "staff@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTokenManager), new(MockEmailService))
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, assert.AnError)

		_, _, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "user-1", Email: "staff@example.com"}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(userRepo, tokens, new(MockEmailService))

		tokens.On("ValidateToken", "old-refresh", security.TokenTypeRefresh).
			Return(&security.UserClaims{UserID: "user-1"}, nil)
		userRepo.On("GetByID", ctx, "user-1").Return(user, nil)
		tokens.On("GenerateAccessToken", "user-1", "staff@example.com").Return("new-access", nil)
		tokens.On("GenerateRefreshToken", "user-1", "staff@example.com").Return("new-refresh", nil)

		access, refresh, err := svc.Refresh(ctx, "old-refresh")
		assert.NoError(t, err)
		assert.Equal(t, "new-access", access)
		assert.Equal(t, "new-refresh", refresh)
	})

	t.Run("Deleted User", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(userRepo, tokens, new(MockEmailService))

		tokens.On("ValidateToken", "old-refresh", security.TokenTypeRefresh).
			Return(&security.UserClaims{UserID: "gone"}, nil)
		userRepo.On("GetByID", ctx, "gone").Return(nil, assert.AnError)

		_, _, err := svc.Refresh(ctx, "old-refresh")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Access Token Rejected", func(t *testing.T) {
		tokens := new(MockTokenManager)
		svc := NewAuthService(new(MockUserRepo), tokens, new(MockEmailService))
		tokens.On("ValidateToken", "an-access-token", security.TokenTypeRefresh).
			Return(nil, security.ErrWrongTokenType)

		_, _, err := svc.Refresh(ctx, "an-access-token")
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "user-1", Email: "staff@example.com", Name: "Staff"}

	t.Run("Sends Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		emailSvc := new(MockEmailService)
		svc := NewAuthService(userRepo, tokens, emailSvc)

		userRepo.On("GetByEmail", ctx, "staff@example.com").Return(user, nil)
		tokens.On("GeneratePasswordResetToken", "user-1", "staff@example.com").Return("reset-token", nil)
		emailSvc.On("SendPasswordReset", ctx, "staff@example.com", "Staff", "reset-token").Return(nil)

		err := svc.RequestPasswordReset(ctx, "staff@example.com")
		assert.NoError(t, err)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Unknown Email Succeeds Silently", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewAuthService(userRepo, new(MockTokenManager), emailSvc)
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, assert.AnError)

		err := svc.RequestPasswordReset(ctx, "nobody@example.com")
		assert.NoError(t, err)
		emailSvc.AssertNotCalled(t, "SendPasswordReset", ctx, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(userRepo, tokens, new(MockEmailService))

		tokens.On("ValidateToken", "reset-token", security.TokenTypePasswordReset).
			Return(&security.UserClaims{UserID: "user-1"}, nil)
		userRepo.On("UpdatePassword", ctx, "user-1", mock.AnythingOfType("string")).Return(nil)

		err := svc.ResetPassword(ctx, "reset-token", "a-long-password")
		assert.NoError(t, err)
		userRepo.AssertCalled(t, "UpdatePassword", ctx, "user-1", mock.AnythingOfType("string"))
	})

	t.Run("Weak Password", func(t *testing.T) {
		tokens := new(MockTokenManager)
		svc := NewAuthService(new(MockUserRepo), tokens, new(MockEmailService))
		tokens.On("ValidateToken", "reset-token", security.TokenTypePasswordReset).
			Return(&security.UserClaims{UserID: "user-1"}, nil)

		err := svc.ResetPassword(ctx, "reset-token", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("Bad Token", func(t *testing.T) {
		tokens := new(MockTokenManager)
		svc := NewAuthService(new(MockUserRepo), tokens, new(MockEmailService))
		tokens.On("ValidateToken", "garbage", security.TokenTypePasswordReset).
			Return(nil, security.ErrInvalidToken)

		err := svc.ResetPassword(ctx, "garbage", "a-long-password")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}
