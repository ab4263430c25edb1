// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrIdentityAlreadyExists is returned when the email is already registered.
	ErrIdentityAlreadyExists = errors.New("identity already exists")
)

// IdentityRepository persists authenticated principals.
type IdentityRepository interface {
	Create(ctx context.Context, identity *entity.Identity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)
}
