// Package gormstore persists key-value records through GORM on SQLite or Postgres.
package gormstore

import (
	"context"
	"errors"
	"time"

	"github.com/MarkoPoloResearchLab/staybook/pkg/booking"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pgUndefinedTableCode = "42P01"
	sqliteBusyCode       = 5
	sqliteLockedCode     = 6
	errorOperationStore  = "store"
	errorSubjectRecord   = "record"
	errorSubjectSchema   = "schema"
	errorCodeBusy        = "busy"
	errorCodeGet         = "get"
	errorCodeMigrate     = "migrate"
	errorCodeMissing     = "missing_table"
	errorCodePut         = "put"
)

// Store implements booking.KeyValue using GORM.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Get loads the value stored under key.
func (store *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var record Record
	err := store.db.WithContext(ctx).
		Where("record_key = ?", key).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrapStoreError(errorSubjectRecord, classify(err, errorCodeGet), err)
	}
	return []byte(record.Value), true, nil
}

// Put upserts value under key.
func (store *Store) Put(ctx context.Context, key string, value []byte) error {
	record := Record{
		Key:       key,
		Value:     datatypes.JSON(append([]byte(nil), value...)),
		UpdatedAt: store.now().UTC(),
	}
	err := store.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return wrapStoreError(errorSubjectRecord, classify(err, errorCodePut), err)
	}
	return nil
}

func wrapStoreError(subject string, code string, err error) error {
	return booking.WrapError(errorOperationStore, subject, code, err)
}

// classify narrows driver errors callers can act on and falls back to code otherwise.
func classify(err error, code string) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTableCode {
		return errorCodeMissing
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xFF {
		case sqliteBusyCode, sqliteLockedCode:
			return errorCodeBusy
		}
	}
	return code
}
