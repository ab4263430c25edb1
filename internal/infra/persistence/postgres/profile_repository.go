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

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create stores the profile; its ID must be an existing identity ID.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := &model.ProfileModel{
		ID:    profile.ID,
		Email: profile.Email,
		Role:  string(profile.Role),
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrIdentityAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("invalid profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.Profile{
		ID:        profileM.ID,
		Email:     profileM.Email,
		Role:      entity.Role(profileM.Role),
		CreatedAt: profileM.CreatedAt,
		UpdatedAt: profileM.UpdatedAt,
	}, nil
}
