package repository

//go:generate mockgen -source=credential_profile.go -destination=mocks/credential_profile.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
)

const credentialProfilesTable = "credential_profiles"

// CredentialProfileRepository é somente leitura: os tokens são mantidos por outro serviço
type CredentialProfileRepository interface {
	GetByID(ctx context.Context, profileID string) (*domain.CredentialProfile, error)
	ListAll(ctx context.Context) ([]*domain.CredentialProfile, error)
}

type credentialProfileRepository struct {
	db postgres.Queryer
}

func NewCredentialProfileRepository(conn postgres.Queryer) CredentialProfileRepository {
	return &credentialProfileRepository{
		db: conn,
	}
}

func (r *credentialProfileRepository) GetByID(ctx context.Context, profileID string) (*domain.CredentialProfile, error) {
	query, args, err := squirrel.
		Select("id", "title", "COALESCE(current_access_token, '')", "COALESCE(previous_access_token, '')").
		From(credentialProfilesTable).
		Where(squirrel.Eq{"id": profileID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	profile := &domain.CredentialProfile{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&profile.Title,
		&profile.CurrentAccessToken,
		&profile.PreviousAccessToken,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError("get credential profile", err)
	}

	return profile, nil
}

func (r *credentialProfileRepository) ListAll(ctx context.Context) ([]*domain.CredentialProfile, error) {
	query, args, err := squirrel.
		Select("id", "title", "COALESCE(current_access_token, '')", "COALESCE(previous_access_token, '')").
		From(credentialProfilesTable).
		OrderBy("title ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("list credential profiles", err)
	}
	defer rows.Close()

	profiles := make([]*domain.CredentialProfile, 0)
	for rows.Next() {
		profile := &domain.CredentialProfile{}
		if err := rows.Scan(
			&profile.ID,
			&profile.Title,
			&profile.CurrentAccessToken,
			&profile.PreviousAccessToken,
		); err != nil {
			return nil, wrapDBError("scan credential profile", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}
