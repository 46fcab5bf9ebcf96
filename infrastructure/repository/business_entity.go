package repository

//go:generate mockgen -source=business_entity.go -destination=mocks/business_entity.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
)

const businessEntitiesTable = "business_entities"

type BusinessEntityRepository interface {
	GetByID(ctx context.Context, businessID string) (*domain.BusinessEntity, error)
	ListAll(ctx context.Context) ([]*domain.BusinessEntity, error)
}

type businessEntityRepository struct {
	db postgres.Queryer
}

func NewBusinessEntityRepository(conn postgres.Queryer) BusinessEntityRepository {
	return &businessEntityRepository{
		db: conn,
	}
}

func (r *businessEntityRepository) GetByID(ctx context.Context, businessID string) (*domain.BusinessEntity, error) {
	query, args, err := squirrel.
		Select("id", "name", "credential_profile_id").
		From(businessEntitiesTable).
		Where(squirrel.Eq{"id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	entity := &domain.BusinessEntity{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entity.ID, &entity.Name, &entity.CredentialProfileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError("get business entity", err)
	}

	return entity, nil
}

func (r *businessEntityRepository) ListAll(ctx context.Context) ([]*domain.BusinessEntity, error) {
	query, args, err := squirrel.
		Select("id", "name", "credential_profile_id").
		From(businessEntitiesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("list business entities", err)
	}
	defer rows.Close()

	entities := make([]*domain.BusinessEntity, 0)
	for rows.Next() {
		entity := &domain.BusinessEntity{}
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.CredentialProfileID); err != nil {
			return nil, wrapDBError("scan business entity", err)
		}
		entities = append(entities, entity)
	}

	return entities, rows.Err()
}
