package authusecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gopostboard/internal/app"
	"gopostboard/internal/domain/entities"
)

func TestForgotPassword(t *testing.T) {
	storedUser := &entities.User{
		ID:    7,
		Email: "bob@example.com",
	}

	t.Run("Success - token issued and email sent", func(t *testing.T) {
		userRepo, tokenRepo, sessions, passwordSvc, mailer := newAuthUseCaseMocks()
		userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(storedUser, nil).Once()
		tokenRepo.On("Issue", mock.Anything, int64(7), testResetTokenTTL).
			Return("reset-token", nil).Once()
		mailer.On("Send", mock.Anything, "bob@example.com", mock.Anything, mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, testFrontendOrigin+"/change-password/reset-token")
		})).Return(nil).Once()

		authUseCase := app.NewAuthUseCase(userRepo, tokenRepo, sessions, passwordSvc, mailer, testResetTokenTTL, testFrontendOrigin)

		success, err := authUseCase.ForgotPassword(context.Background(), "bob@example.com")

		require.NoError(t, err)
		assert.True(t, success)
		userRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("Success - unknown email leaks nothing", func(t *testing.T) {
		userRepo, tokenRepo, sessions, passwordSvc, mailer := newAuthUseCaseMocks()
		userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
			Return(nil, entities.ErrUserNotFound).Once()

		authUseCase := app.NewAuthUseCase(userRepo, tokenRepo, sessions, passwordSvc, mailer, testResetTokenTTL, testFrontendOrigin)

		success, err := authUseCase.ForgotPassword(context.Background(), "nobody@example.com")

		require.NoError(t, err)
		assert.True(t, success)
		tokenRepo.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - email send failure is not fatal", func(t *testing.T) {
		userRepo, tokenRepo, sessions, passwordSvc, mailer := newAuthUseCaseMocks()
		userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(storedUser, nil).Once()
		tokenRepo.On("Issue", mock.Anything, int64(7), testResetTokenTTL).
			Return("reset-token", nil).Once()
		mailer.On("Send", mock.Anything, "bob@example.com", mock.Anything, mock.Anything).
			Return(errors.New("smtp error")).Once()

		authUseCase := app.NewAuthUseCase(userRepo, tokenRepo, sessions, passwordSvc, mailer, testResetTokenTTL, testFrontendOrigin)

		success, err := authUseCase.ForgotPassword(context.Background(), "bob@example.com")

		require.NoError(t, err)
		assert.True(t, success)
		mailer.AssertExpectations(t)
	})

	t.Run("Error - lookup failure", func(t *testing.T) {
		userRepo, tokenRepo, sessions, passwordSvc, mailer := newAuthUseCaseMocks()
		userRepo.On("FindByEmail", mock.Anything, "bob@example.com").
			Return(nil, errors.New("database error")).Once()

		authUseCase := app.NewAuthUseCase(userRepo, tokenRepo, sessions, passwordSvc, mailer, testResetTokenTTL, testFrontendOrigin)

		success, err := authUseCase.ForgotPassword(context.Background(), "bob@example.com")

		require.Error(t, err)
		assert.False(t, success)
	})

	t.Run("Error - token issue failure", func(t *testing.T) {
		userRepo, tokenRepo, sessions, passwordSvc, mailer := newAuthUseCaseMocks()
		userRepo.On("FindByEmail", mock.Anything, "bob@example.com").Return(storedUser, nil).Once()
		tokenRepo.On("Issue", mock.Anything, int64(7), testResetTokenTTL).
			Return("", errors.New("redis error")).Once()

		authUseCase := app.NewAuthUseCase(userRepo, tokenRepo, sessions, passwordSvc, mailer, testResetTokenTTL, testFrontendOrigin)

		success, err := authUseCase.ForgotPassword(context.Background(), "bob@example.com")

		require.Error(t, err)
		assert.False(t, success)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
