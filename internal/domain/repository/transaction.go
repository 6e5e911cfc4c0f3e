package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
// Dispatch bookkeeping writes audit logs and prunes invalid tokens together,
// so both repositories must share the same transaction.
type RepositoryFactory interface {
	NewPushTokenRepository() PushTokenRepository
	NewDispatchLogRepository() DispatchLogRepository
}

// TransactionManager runs a unit of work inside a single database
// transaction, rolling back on error or panic.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
