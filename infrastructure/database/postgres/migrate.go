package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// schema cria as tabelas do monitor. Todas as instruções são idempotentes.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS credential_profiles (
		id                    TEXT PRIMARY KEY,
		title                 TEXT NOT NULL,
		current_access_token  TEXT,
		previous_access_token TEXT,
		created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS business_entities (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL,
		credential_profile_id TEXT NOT NULL REFERENCES credential_profiles (id)
	)`,
	`CREATE TABLE IF NOT EXISTS ad_accounts (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL,
		status                INTEGER NOT NULL,
		currency              TEXT NOT NULL DEFAULT '',
		timezone              TEXT NOT NULL DEFAULT '',
		lifetime_spend        NUMERIC(20, 4) NOT NULL DEFAULT 0,
		amount_spent          NUMERIC(20, 4) NOT NULL DEFAULT 0,
		spend_cap             NUMERIC(20, 4) NOT NULL DEFAULT 0,
		balance               NUMERIC(20, 4) NOT NULL DEFAULT 0,
		available_funds       NUMERIC(20, 4) NOT NULL DEFAULT 0,
		critical_limit        NUMERIC(20, 4) NOT NULL DEFAULT 0,
		medium_limit          NUMERIC(20, 4) NOT NULL DEFAULT 0,
		initial_limit         NUMERIC(20, 4) NOT NULL DEFAULT 0,
		alert_enabled         BOOLEAN NOT NULL DEFAULT TRUE,
		last_alert_sent_at    TIMESTAMPTZ,
		last_sync_at          TIMESTAMPTZ,
		business_entity_id    TEXT REFERENCES business_entities (id),
		credential_profile_id TEXT NOT NULL REFERENCES credential_profiles (id),
		created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_accounts_alert_enabled ON ad_accounts (alert_enabled)`,
	`CREATE TABLE IF NOT EXISTS daily_spend (
		account_id TEXT NOT NULL REFERENCES ad_accounts (id),
		date       DATE NOT NULL,
		amount     NUMERIC(20, 4) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (account_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS account_status_changes (
		id                TEXT PRIMARY KEY,
		account_id        TEXT NOT NULL REFERENCES ad_accounts (id),
		from_status       INTEGER NOT NULL,
		to_status         INTEGER NOT NULL,
		balance_at_change NUMERIC(20, 4) NOT NULL DEFAULT 0,
		changed_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_account_status_changes_account ON account_status_changes (account_id, changed_at)`,
}

// Migrate aplica o schema dentro de uma transação
func Migrate(ctx context.Context, conn Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration step %d: %w", i+1, err)
			}
		}

		logrus.WithField("steps", len(schema)).Info("Schema do banco de dados aplicado")
		return nil
	})
}
