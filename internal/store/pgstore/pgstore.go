// Package pgstore persists key-value records in Postgres through a pgx pool.
package pgstore

import (
	"context"
	"errors"

	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUndefinedTableCode = "42P01"
	errorOperationStore  = "store"
	errorSubjectRecord   = "record"
	errorSubjectSchema   = "schema"
	errorCodeEnsure      = "ensure"
	errorCodeGet         = "get"
	errorCodeMissing     = "missing_table"
	errorCodePut         = "put"

	sqlCreateRecords = `
		create table if not exists kv_records (
			record_key varchar(191) primary key,
			value jsonb not null,
			updated_at timestamptz not null default now()
		)
	`

	sqlSelectRecord = `
		select value from kv_records where record_key = $1
	`

	sqlUpsertRecord = `
		insert into kv_records(record_key, value, updated_at) values ($1, $2, now())
		on conflict (record_key) do update set value = excluded.value, updated_at = excluded.updated_at
	`
)

// Store implements booking.KeyValue using a pgx connection pool (autocommit).
type Store struct {
	pool *pgxpool.Pool
}

// New returns a Store backed by a pgx pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the kv_records table when it does not exist yet.
func (store *Store) EnsureSchema(ctx context.Context) error {
	if _, err := store.pool.Exec(ctx, sqlCreateRecords); err != nil {
		return wrapStoreError(errorSubjectSchema, errorCodeEnsure, err)
	}
	return nil
}

// Get loads the value stored under key.
func (store *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := store.pool.QueryRow(ctx, sqlSelectRecord, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrapStoreError(errorSubjectRecord, classify(err, errorCodeGet), err)
	}
	return value, true, nil
}

// Put upserts value under key.
func (store *Store) Put(ctx context.Context, key string, value []byte) error {
	if _, err := store.pool.Exec(ctx, sqlUpsertRecord, key, value); err != nil {
		return wrapStoreError(errorSubjectRecord, classify(err, errorCodePut), err)
	}
	return nil
}

func wrapStoreError(subject string, code string, err error) error {
	return booking.WrapError(errorOperationStore, subject, code, err)
}

func classify(err error, code string) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTableCode {
		return errorCodeMissing
	}
	return code
}
