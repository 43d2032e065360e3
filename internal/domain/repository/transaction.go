package repository

import "context"

// TransactionManager runs identity writes atomically without exposing the database driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. An error from fn rolls it back; nil commits.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
}
