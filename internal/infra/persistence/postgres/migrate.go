package postgres

import (
	"context"

	"voterdesk/internal/errors"
	"voterdesk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// voterPolicyStatements installs the store-side ownership rule on voters.
// FORCE applies it to the table owner as well; superusers still bypass it.
var voterPolicyStatements = []string{
	`ALTER TABLE voters ENABLE ROW LEVEL SECURITY`,
	`ALTER TABLE voters FORCE ROW LEVEL SECURITY`,
	`DROP POLICY IF EXISTS voters_owner_or_admin ON voters`,
	`CREATE POLICY voters_owner_or_admin ON voters
		USING (
			owner_id::text = current_setting('app.requester_id', true)
			OR current_setting('app.requester_role', true) = 'administrator'
		)
		WITH CHECK (
			owner_id::text = current_setting('app.requester_id', true)
			OR current_setting('app.requester_role', true) = 'administrator'
		)`,
	// voter_owner lifts the policy for one owner lookup and restores the
	// caller's role before returning.
	`CREATE OR REPLACE FUNCTION voter_owner(target uuid) RETURNS uuid
		LANGUAGE plpgsql AS $$
		DECLARE
			saved_role text := coalesce(current_setting('app.requester_role', true), '');
			found uuid;
		BEGIN
			PERFORM set_config('app.requester_role', 'administrator', true);
			SELECT owner_id INTO found FROM voters WHERE id = target;
			PERFORM set_config('app.requester_role', saved_role, true);
			RETURN found;
		END
		$$`,
}

// Migrate creates or updates every table and the voters row policy.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return errors.Wrap(err, "enable pgcrypto")
	}

	if err := db.AutoMigrate(
		&model.IdentityModel{},
		&model.CredentialModel{},
		&model.RefreshTokenModel{},
		&model.ProfileModel{},
		&model.VoterModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, statement := range voterPolicyStatements {
			if err := tx.Exec(statement).Error; err != nil {
				return errors.Wrap(err, "install voters row policy")
			}
		}

		return nil
	})
}
