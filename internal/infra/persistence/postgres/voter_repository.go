package postgres

import (
	"context"
	"time"

	"voterdesk/internal/domain/access"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/repository"
	"voterdesk/internal/errors"
	"voterdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const voterRecencyOrder = "created_at DESC, sequence DESC"

// voterRepository implements the domain.VoterRepository interface. Every
// statement is narrowed by ownerPolicy, whatever the caller asked for.
type voterRepository struct {
	db *gorm.DB
}

// NewVoterRepository is the constructor for voterRepository.
func NewVoterRepository(db *gorm.DB) repository.VoterRepository {
	return &voterRepository{db: db}
}

// ownerPolicy restricts standard users to the rows they own. Administrators see every row.
func ownerPolicy(requester access.Requester) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if requester.IsAdministrator() {
			return db
		}

		return db.Where("owner_id = ?", requester.ID)
	}
}

func requesterOf(ctx context.Context) (access.Requester, error) {
	requester, ok := access.RequesterFrom(ctx)
	if !ok || requester.ID == uuid.Nil {
		return access.Requester{}, repository.ErrRequesterMissing
	}

	return requester, nil
}

// scoped returns a voters statement already narrowed to what the requester may touch.
func (repo *voterRepository) scoped(ctx context.Context) (*gorm.DB, error) {
	requester, err := requesterOf(ctx)
	if err != nil {
		return nil, err
	}

	return repo.db.WithContext(ctx).Model(&model.VoterModel{}).Scopes(ownerPolicy(requester)), nil
}

// Create inserts the record. Standard users may only create rows they own.
func (repo *voterRepository) Create(ctx context.Context, record *entity.VoterRecord) error {
	requester, err := requesterOf(ctx)
	if err != nil {
		return err
	}
	if !requester.IsAdministrator() && record.OwnerID != requester.ID {
		return domainerrors.ErrForbidden.WrapMessage("voter owner does not match requester")
	}

	voterM := fromVoterDomain(record)
	voterM.ID = uuid.Nil
	voterM.Sequence = 0
	voterM.UpdatedAt = time.Now()

	if err := repo.db.WithContext(ctx).Create(voterM).Error; err != nil {
		return translateVoterWriteError(err, "failed to create voter")
	}

	record.ID = voterM.ID
	record.Sequence = voterM.Sequence
	record.CreatedAt = voterM.CreatedAt
	record.UpdatedAt = voterM.UpdatedAt

	return nil
}

// FindByID returns the record when it exists and the requester may see it.
func (repo *voterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VoterRecord, error) {
	db, err := repo.scoped(ctx)
	if err != nil {
		return nil, err
	}

	var voterM model.VoterModel
	if err := db.Where("id = ?", id).First(&voterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoterNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read voter")
	}

	return toVoterDomain(&voterM), nil
}

// OwnerOf resolves the owner through voter_owner(), which reads past the row policy.
func (repo *voterRepository) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if _, err := requesterOf(ctx); err != nil {
		return uuid.Nil, err
	}

	var owner uuid.NullUUID
	if err := repo.db.WithContext(ctx).Raw("SELECT voter_owner(?)", id).Row().Scan(&owner); err != nil {
		return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve voter owner")
	}
	if !owner.Valid {
		return uuid.Nil, repository.ErrVoterNotFound
	}

	return owner.UUID, nil
}

// List returns the visible records, newest first.
func (repo *voterRepository) List(ctx context.Context, query repository.VoterQuery) ([]*entity.VoterRecord, error) {
	db, err := repo.listQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	var voterModels []*model.VoterModel
	if err := db.Find(&voterModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list voters")
	}

	records := make([]*entity.VoterRecord, 0, len(voterModels))
	for _, voterM := range voterModels {
		records = append(records, toVoterDomain(voterM))
	}

	return records, nil
}

func (repo *voterRepository) listQuery(ctx context.Context, query repository.VoterQuery) (*gorm.DB, error) {
	db, err := repo.scoped(ctx)
	if err != nil {
		return nil, err
	}

	if query.OwnerID != nil {
		db = db.Where("owner_id = ?", *query.OwnerID)
	}

	return db.Order(voterRecencyOrder), nil
}

// Update replaces the draft-controlled columns of a visible record, then
// reloads it so OwnerID and CreatedAt reflect the stored values.
func (repo *voterRepository) Update(ctx context.Context, record *entity.VoterRecord) error {
	db, err := repo.scoped(ctx)
	if err != nil {
		return err
	}

	result := db.Where("id = ?", record.ID).Updates(map[string]any{
		"full_name":       record.FullName,
		"category":        string(record.Category),
		"gender":          string(record.Gender),
		"commune":         record.Commune,
		"address":         record.Address,
		"phone1":          record.Phone1,
		"phone2":          optionalString(record.Phone2),
		"profession":      record.Profession,
		"polling_station": record.PollingStation,
		"leader":          record.Leader,
		"has_voted":       string(record.HasVoted),
		"notes":           optionalString(record.Notes),
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return translateVoterWriteError(result.Error, "failed to update voter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoterNotFound
	}

	stored, err := repo.FindByID(ctx, record.ID)
	if err != nil {
		return err
	}
	*record = *stored

	return nil
}

// Delete removes a visible record.
func (repo *voterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := repo.scoped(ctx)
	if err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&model.VoterModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete voter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoterNotFound
	}

	return nil
}

func translateVoterWriteError(err error, details string) error {
	if isRowSecurityViolation(err) {
		return domainerrors.ErrForbidden.WrapMessage(details)
	}
	if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrForbidden.WrapMessage("unknown owner")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func toVoterDomain(data *model.VoterModel) *entity.VoterRecord {
	if data == nil {
		return nil
	}

	return &entity.VoterRecord{
		ID:             data.ID,
		FullName:       data.FullName,
		Category:       entity.Category(data.Category),
		Gender:         entity.Gender(data.Gender),
		Commune:        data.Commune,
		Address:        data.Address,
		Phone1:         data.Phone1,
		Phone2:         derefString(data.Phone2),
		Profession:     data.Profession,
		PollingStation: data.PollingStation,
		Leader:         data.Leader,
		HasVoted:       entity.VotingStatus(data.HasVoted),
		Notes:          derefString(data.Notes),
		OwnerID:        data.OwnerID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Sequence:       data.Sequence,
	}
}

func fromVoterDomain(data *entity.VoterRecord) *model.VoterModel {
	if data == nil {
		return nil
	}

	return &model.VoterModel{
		ID:             data.ID,
		Sequence:       data.Sequence,
		FullName:       data.FullName,
		Category:       string(data.Category),
		Gender:         string(data.Gender),
		Commune:        data.Commune,
		Address:        data.Address,
		Phone1:         data.Phone1,
		Phone2:         optionalString(data.Phone2),
		Profession:     data.Profession,
		PollingStation: data.PollingStation,
		Leader:         data.Leader,
		HasVoted:       string(data.HasVoted),
		Notes:          optionalString(data.Notes),
		OwnerID:        data.OwnerID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
