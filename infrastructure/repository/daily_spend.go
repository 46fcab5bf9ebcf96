package repository

//go:generate mockgen -source=daily_spend.go -destination=mocks/daily_spend.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
)

const dailySpendTable = "daily_spend"

type DailySpendRepository interface {
	Upsert(ctx context.Context, entries []*domain.DailySpendEntry) error
	SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
	GetAmount(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error)
}

type dailySpendRepository struct {
	db postgres.Queryer
}

func NewDailySpendRepository(conn postgres.Queryer) DailySpendRepository {
	return &dailySpendRepository{
		db: conn,
	}
}

// Upsert grava os dias por (account_id, date) sobrescrevendo o valor anterior
func (r *dailySpendRepository) Upsert(ctx context.Context, entries []*domain.DailySpendEntry) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now()

	builder := squirrel.
		Insert(dailySpendTable).
		Columns("account_id", "date", "amount", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	// uma linha por chave: o postgres recusa ON CONFLICT que toque a mesma linha duas vezes
	seen := make(map[string]int, len(entries))
	rows := make([]*domain.DailySpendEntry, 0, len(entries))
	for _, entry := range entries {
		key := entry.AccountID + "|" + entry.Date.Format(time.DateOnly)
		if idx, ok := seen[key]; ok {
			rows[idx] = entry
			continue
		}
		seen[key] = len(rows)
		rows = append(rows, entry)
	}

	for _, entry := range rows {
		builder = builder.Values(entry.AccountID, entry.Date.Format(time.DateOnly), entry.Amount, now, now)
	}

	query, args, err := builder.
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				amount = EXCLUDED.amount,
				updated_at = EXCLUDED.updated_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError("upsert daily spend", err)
	}

	return nil
}

// SumByAccount soma todos os dias armazenados da conta
func (r *dailySpendRepository) SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(dailySpendTable).
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, wrapDBError("sum daily spend", err)
	}

	return total, nil
}

// GetAmount retorna o gasto registrado no dia, zero quando não há registro
func (r *dailySpendRepository) GetAmount(ctx context.Context, accountID string, date time.Time) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(dailySpendTable).
		Where(squirrel.Eq{
			"account_id": accountID,
			"date":       date.Format(time.DateOnly),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var amount decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&amount); err != nil {
		return decimal.Zero, wrapDBError("get daily spend", err)
	}

	return amount, nil
}
