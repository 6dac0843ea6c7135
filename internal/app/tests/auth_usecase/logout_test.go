package authusecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gopostboard/internal/app"
	"gopostboard/internal/domain/entities"
)

func TestLogout(t *testing.T) {
	t.Run("Success - session destroyed", func(t *testing.T) {
		userRepo, tokenRepo, sessions, passwordSvc, mailer := newAuthUseCaseMocks()
		sessions.On("Destroy", mock.Anything, mock.Anything).Return(nil).Once()

		authUseCase := app.NewAuthUseCase(userRepo, tokenRepo, sessions, passwordSvc, mailer, testResetTokenTTL, testFrontendOrigin)

		session := &entities.Session{ID: "session-id", UserID: 7}
		success := authUseCase.Logout(context.Background(), session)

		assert.True(t, success)
		assert.True(t, session.Destroyed)
		assert.False(t, session.Authenticated())
		sessions.AssertExpectations(t)
	})

	t.Run("Failure - destroy error resolves false", func(t *testing.T) {
		userRepo, tokenRepo, sessions, passwordSvc, mailer := newAuthUseCaseMocks()
		sessions.On("Destroy", mock.Anything, mock.Anything).
			Return(errors.New("redis error")).Once()

		authUseCase := app.NewAuthUseCase(userRepo, tokenRepo, sessions, passwordSvc, mailer, testResetTokenTTL, testFrontendOrigin)

		session := &entities.Session{ID: "session-id", UserID: 7}
		success := authUseCase.Logout(context.Background(), session)

		assert.False(t, success)
		assert.False(t, session.Destroyed)
		sessions.AssertExpectations(t)
	})
}
