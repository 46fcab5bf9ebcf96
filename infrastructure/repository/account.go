package repository

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
)

const accountsTable = "ad_accounts"

var accountColumns = []string{
	"id", "name", "status", "currency", "timezone",
	"lifetime_spend", "amount_spent", "spend_cap", "balance", "available_funds",
	"critical_limit", "medium_limit", "initial_limit",
	"alert_enabled", "last_alert_sent_at", "last_sync_at",
	"business_entity_id", "credential_profile_id", "created_at", "updated_at",
}

type AccountRepository interface {
	GetByID(ctx context.Context, accountID string) (*domain.AdAccount, error)
	ListAll(ctx context.Context) ([]*domain.AdAccount, error)
	ListAlertEnabled(ctx context.Context) ([]*domain.AdAccount, error)
	Upsert(ctx context.Context, account *domain.AdAccount) error
	UpsertWithStatusChange(ctx context.Context, account *domain.AdAccount, change *domain.AccountStatusChange) error
	UpdateLifetimeSpend(ctx context.Context, accountID string, lifetimeSpend decimal.Decimal) error
	UpdateLimits(ctx context.Context, accountID string, limits domain.SpendLimits) error
	ClaimAlert(ctx context.Context, accountID string, sentAt, cutoff time.Time) (bool, error)
	SetBusinessEntity(ctx context.Context, accountID, businessEntityID string) (bool, error)
}

const upsertAccountConflictClause = `
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		status = EXCLUDED.status,
		currency = EXCLUDED.currency,
		timezone = EXCLUDED.timezone,
		amount_spent = EXCLUDED.amount_spent,
		spend_cap = EXCLUDED.spend_cap,
		balance = EXCLUDED.balance,
		available_funds = EXCLUDED.available_funds,
		alert_enabled = EXCLUDED.alert_enabled,
		last_sync_at = EXCLUDED.last_sync_at,
		credential_profile_id = EXCLUDED.credential_profile_id,
		updated_at = EXCLUDED.updated_at
`

type accountRepository struct {
	db   postgres.Queryer
	conn postgres.Conn
}

func NewAccountRepository(conn postgres.Conn) AccountRepository {
	return &accountRepository{
		db:   conn,
		conn: conn,
	}
}

func (r *accountRepository) GetByID(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	acc, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError("get account", err)
	}

	return acc, nil
}

func (r *accountRepository) ListAll(ctx context.Context) ([]*domain.AdAccount, error) {
	return r.list(ctx, nil)
}

func (r *accountRepository) ListAlertEnabled(ctx context.Context) ([]*domain.AdAccount, error) {
	return r.list(ctx, squirrel.Eq{"alert_enabled": true})
}

func (r *accountRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.AdAccount, error) {
	builder := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("list accounts", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, wrapDBError("scan account", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

// Upsert grava os campos vindos da sincronização. Limites, último alerta, business e gasto acumulado
// só são gravados na criação; depois pertencem a outras rotinas.
func (r *accountRepository) Upsert(ctx context.Context, account *domain.AdAccount) error {
	return upsertAccount(ctx, r.db, account)
}

// UpsertWithStatusChange grava a auditoria da mudança de status e a conta na mesma transação,
// assim uma falha na conta não deixa auditoria órfã para a mesma transição.
func (r *accountRepository) UpsertWithStatusChange(ctx context.Context, account *domain.AdAccount, change *domain.AccountStatusChange) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := NewStatusChangeRepository(tx).Append(ctx, change); err != nil {
			return err
		}
		return upsertAccount(ctx, tx, account)
	})
}

func upsertAccount(ctx context.Context, db postgres.Queryer, account *domain.AdAccount) error {
	now := time.Now()

	query, args, err := squirrel.
		Insert(accountsTable).
		Columns(accountColumns...).
		Values(
			account.ID,
			account.Name,
			account.Status,
			account.Currency,
			account.Timezone,
			account.LifetimeSpend,
			account.AmountSpent,
			account.SpendCap,
			account.Balance,
			account.AvailableFunds,
			account.Limits.Critical,
			account.Limits.Medium,
			account.Limits.Initial,
			account.AlertEnabled,
			account.LastAlertSentAt,
			account.LastSyncAt,
			account.BusinessEntityID,
			account.CredentialProfileID,
			now,
			now,
		).
		Suffix(upsertAccountConflictClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError("upsert account", err)
	}

	return nil
}

func (r *accountRepository) UpdateLifetimeSpend(ctx context.Context, accountID string, lifetimeSpend decimal.Decimal) error {
	return r.update(ctx, "update lifetime spend", accountID, squirrel.Eq{"lifetime_spend": lifetimeSpend})
}

func (r *accountRepository) UpdateLimits(ctx context.Context, accountID string, limits domain.SpendLimits) error {
	return r.update(ctx, "update limits", accountID, squirrel.Eq{
		"critical_limit": limits.Critical,
		"medium_limit":   limits.Medium,
		"initial_limit":  limits.Initial,
	})
}

// ClaimAlert grava sentAt como horário do último alerta somente se nenhum alerta foi enviado depois de
// cutoff. Retorna false quando outra rotina já reservou o alerta dentro do cooldown.
func (r *accountRepository) ClaimAlert(ctx context.Context, accountID string, sentAt, cutoff time.Time) (bool, error) {
	query, args, err := squirrel.
		Update(accountsTable).
		Set("last_alert_sent_at", sentAt).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": accountID}).
		Where(squirrel.Or{
			squirrel.Eq{"last_alert_sent_at": nil},
			squirrel.LtOrEq{"last_alert_sent_at": cutoff},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapDBError("claim alert", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// SetBusinessEntity associa a conta ao business. Retorna false quando a conta não existe localmente.
func (r *accountRepository) SetBusinessEntity(ctx context.Context, accountID, businessEntityID string) (bool, error) {
	query, args, err := squirrel.
		Update(accountsTable).
		Set("business_entity_id", businessEntityID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapDBError("set business entity", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *accountRepository) update(ctx context.Context, op, accountID string, fields squirrel.Eq) error {
	builder := squirrel.
		Update(accountsTable).
		SetMap(fields).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(op, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.Name,
		&acc.Status,
		&acc.Currency,
		&acc.Timezone,
		&acc.LifetimeSpend,
		&acc.AmountSpent,
		&acc.SpendCap,
		&acc.Balance,
		&acc.AvailableFunds,
		&acc.Limits.Critical,
		&acc.Limits.Medium,
		&acc.Limits.Initial,
		&acc.AlertEnabled,
		&acc.LastAlertSentAt,
		&acc.LastSyncAt,
		&acc.BusinessEntityID,
		&acc.CredentialProfileID,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}
