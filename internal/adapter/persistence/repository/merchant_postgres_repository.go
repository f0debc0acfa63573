package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/usecase/interfaces"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"
)

const merchantsSchema = `
CREATE TABLE IF NOT EXISTS merchant_profiles (
    id          TEXT PRIMARY KEY,
    processor   TEXT NOT NULL,
    test        BOOLEAN NOT NULL DEFAULT FALSE,
    credentials JSONB NOT NULL,
    base_url    TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL
)`

// MerchantPostgresRepository persists MerchantProfile records in Postgres.
type MerchantPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IMerchantRepository = (*MerchantPostgresRepository)(nil)

func NewMerchantPostgresRepository(db *sql.DB) *MerchantPostgresRepository {
	return &MerchantPostgresRepository{db: db}
}

// Migrate creates the merchant_profiles table when missing.
func (r *MerchantPostgresRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, merchantsSchema)
	return err
}

func (r *MerchantPostgresRepository) Create(ctx context.Context, m entities.MerchantProfile) (entities.MerchantProfile, error) {
	creds, err := json.Marshal(m.Credentials)
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO merchant_profiles(id, processor, test, credentials, base_url, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, m.ID, m.Processor, m.Test, string(creds), m.BaseURL, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
	if isUniqueViolation(err) {
		return entities.MerchantProfile{}, entities.ErrMerchantExists
	}
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	return m, nil
}

func (r *MerchantPostgresRepository) GetByID(ctx context.Context, id string) (entities.MerchantProfile, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, processor, test, credentials, base_url, created_at, updated_at
        FROM merchant_profiles WHERE id=$1
    `, id)

	var m entities.MerchantProfile
	var creds []byte
	if err := row.Scan(&m.ID, &m.Processor, &m.Test, &creds, &m.BaseURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.MerchantProfile{}, nil
		}
		return entities.MerchantProfile{}, err
	}
	if err := json.Unmarshal(creds, &m.Credentials); err != nil {
		return entities.MerchantProfile{}, err
	}
	return m, nil
}

func (r *MerchantPostgresRepository) Put(ctx context.Context, m entities.MerchantProfile) (entities.MerchantProfile, error) {
	creds, err := json.Marshal(m.Credentials)
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO merchant_profiles(id, processor, test, credentials, base_url, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (id) DO UPDATE SET
            processor=EXCLUDED.processor, test=EXCLUDED.test, credentials=EXCLUDED.credentials,
            base_url=EXCLUDED.base_url, updated_at=EXCLUDED.updated_at
    `, m.ID, m.Processor, m.Test, string(creds), m.BaseURL, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
	if err != nil {
		return entities.MerchantProfile{}, err
	}
	return m, nil
}

func (r *MerchantPostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM merchant_profiles WHERE id=$1`, id)
	return err
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code == "23505" {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		return true
	}
	return false
}
