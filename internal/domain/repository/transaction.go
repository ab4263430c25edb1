package repository

import "context"

// TransactionManager runs a unit of work in one database transaction.
// The requester carried by ctx (see access.WithRequester) is applied to the
// transaction before fn runs.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	IdentityRepo() IdentityRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
	ProfileRepo() ProfileRepository
	VoterRepo() VoterRepository
}
