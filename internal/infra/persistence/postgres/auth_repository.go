package postgres

import (
	"context"

	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/repository"
	"voterdesk/internal/errors"
	"voterdesk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// authRepository implements the domain.AuthRepository interface.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateCredential stores the password hash of an identity.
func (repo *authRepository) CreateCredential(ctx context.Context, credential *entity.Credential) error {
	credentialM := &model.CredentialModel{
		ID:           credential.ID,
		IdentityID:   credential.IdentityID,
		Email:        credential.Email,
		PasswordHash: credential.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrIdentityAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("invalid identity reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

// FindCredentialByEmail retrieves the credential registered for email.
func (repo *authRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.Credential{
		ID:           credentialM.ID,
		IdentityID:   credentialM.IdentityID,
		Email:        credentialM.Email,
		PasswordHash: credentialM.PasswordHash,
		CreatedAt:    credentialM.CreatedAt,
	}, nil
}
