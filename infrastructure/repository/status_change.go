package repository

//go:generate mockgen -source=status_change.go -destination=mocks/status_change.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
)

const statusChangesTable = "account_status_changes"

type StatusChangeRepository interface {
	Append(ctx context.Context, change *domain.AccountStatusChange) error
	ListByAccount(ctx context.Context, accountID string) ([]*domain.AccountStatusChange, error)
}

type statusChangeRepository struct {
	db postgres.Queryer
}

func NewStatusChangeRepository(conn postgres.Queryer) StatusChangeRepository {
	return &statusChangeRepository{
		db: conn,
	}
}

// Append insere o registro de auditoria. Registros nunca são alterados.
func (r *statusChangeRepository) Append(ctx context.Context, change *domain.AccountStatusChange) error {
	query, args, err := squirrel.
		Insert(statusChangesTable).
		Columns("id", "account_id", "from_status", "to_status", "balance_at_change", "changed_at").
		Values(change.ID, change.AccountID, change.FromStatus, change.ToStatus, change.BalanceAtChange, change.ChangedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError("append status change", err)
	}

	return nil
}

func (r *statusChangeRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.AccountStatusChange, error) {
	query, args, err := squirrel.
		Select("id", "account_id", "from_status", "to_status", "balance_at_change", "changed_at").
		From(statusChangesTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("changed_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("list status changes", err)
	}
	defer rows.Close()

	changes := make([]*domain.AccountStatusChange, 0)
	for rows.Next() {
		change := &domain.AccountStatusChange{}
		if err := rows.Scan(
			&change.ID,
			&change.AccountID,
			&change.FromStatus,
			&change.ToStatus,
			&change.BalanceAtChange,
			&change.ChangedAt,
		); err != nil {
			return nil, wrapDBError("scan status change", err)
		}
		changes = append(changes, change)
	}

	return changes, rows.Err()
}
