package postgres

import (
	"context"

	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/repository"
	"voterdesk/internal/errors"
	"voterdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// Create inserts the identity and fills its generated ID and CreatedAt.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := &model.IdentityModel{
		ID:    identity.ID,
		Email: identity.Email,
	}

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrIdentityAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt

	return nil
}

func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	return repo.first(ctx, "email = ?", email)
}

func (repo *identityRepository) first(ctx context.Context, cond string, arg any) (*entity.Identity, error) {
	var identityM model.IdentityModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.Identity{
		ID:        identityM.ID,
		Email:     identityM.Email,
		CreatedAt: identityM.CreatedAt,
	}, nil
}
