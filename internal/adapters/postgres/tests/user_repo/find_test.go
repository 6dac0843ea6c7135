package userrepo_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopostboard/internal/adapters/postgres"
	"gopostboard/internal/domain/entities"
)

const ErrQueryingUserByID = "error querying user by id"

func setupUserMock(mock pgxmock.PgxPoolIface, param any, user entities.User) {
	rows := pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)

	mock.ExpectQuery("SELECT id, username, email, password_hash, created_at, updated_at").
		WithArgs(param).
		WillReturnRows(rows)
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := testContext(t)
	user := testUser()

	t.Run("successful user acquisition", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		setupUserMock(mock, user.ID, user)

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByID(ctx, user.ID)

		require.NoError(t, err)
		assertUserEquals(t, &user, found)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("the user was not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at, updated_at").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByID(ctx, 99)

		require.Nil(t, found)
		require.ErrorIs(t, err, entities.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at, updated_at").
			WithArgs(user.ID).
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByID(ctx, user.ID)

		assert.Nil(t, found)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrQueryingUserByID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByUsernameOrEmail(t *testing.T) {
	ctx := testContext(t)
	user := testUser()

	t.Run("login containing @ is looked up by email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		setupUserMock(mock, user.Email, user)

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByUsernameOrEmail(ctx, user.Email)

		require.NoError(t, err)
		assertUserEquals(t, &user, found)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("plain login is looked up by username", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		setupUserMock(mock, user.Username, user)

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByUsernameOrEmail(ctx, user.Username)

		require.NoError(t, err)
		assertUserEquals(t, &user, found)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("the user was not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at, updated_at").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByUsernameOrEmail(ctx, "nobody")

		require.Nil(t, found)
		require.ErrorIs(t, err, entities.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
