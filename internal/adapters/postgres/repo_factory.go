package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gopostboard/internal/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(pool),
		postRepo: NewPostRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// PostRepository возвращает репозиторий записей.
func (f *RepositoryFactory) PostRepository() repositories.PostRepository {
	return f.postRepo
}
