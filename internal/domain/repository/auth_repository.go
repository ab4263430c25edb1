package repository

import (
	"context"
	"errors"

	"voterdesk/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential exists for an email.
var ErrCredentialNotFound = errors.New("credential not found")

// AuthRepository persists email/password credentials.
type AuthRepository interface {
	// CreateCredential stores the bcrypt hash for an identity.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindCredentialByEmail looks a credential up by its normalized email.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
