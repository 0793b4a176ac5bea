package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// InitDB opens the sqlite database backing the app_state key/value table,
// which holds the persisted JSON blobs (favorites, cached state) under fixed
// string keys.
func InitDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// enable write-ahead logging for better concurrency
	_, err = db.Exec("PRAGMA journal_mode=WAL;")
	if err != nil {
		log.Printf("warning: failed to set WAL mode: %v", err)
	}

	sqlStmt := `
	CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	_, err = db.Exec(sqlStmt)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create app_state table: %w", err)
	}

	log.Println("database initialized successfully at", dataSourceName)
	return db, nil
}

// GetState retrieves the blob stored under key. Returns sql.ErrNoRows when
// the key has never been written.
func GetState(db *sql.DB, key string) (string, error) {
	queryBuilder := psql.Select("value").
		From("app_state").
		Where(sq.Eq{"key": key}).
		Limit(1)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build SQL query for GetState: %w", err)
	}

	var value string
	err = db.QueryRow(sqlStr, args...).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", sql.ErrNoRows
		}
		return "", fmt.Errorf("failed to query or scan state for %s: %w", key, err)
	}
	return value, nil
}

// SetState inserts or replaces the blob stored under key.
func SetState(db *sql.DB, key, value string) error {
	queryBuilder := psql.Insert("app_state").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().Unix()).
		Suffix("ON CONFLICT(key) DO UPDATE SET").
		Suffix("value = excluded.value,").
		Suffix("updated_at = excluded.updated_at")

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build SQL query for SetState: %w", err)
	}

	_, err = db.Exec(sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to execute set state for %s: %w", key, err)
	}
	return nil
}

// DeleteState removes the blob stored under key. Deleting an absent key is
// not an error.
func DeleteState(db *sql.DB, key string) error {
	queryBuilder := psql.Delete("app_state").Where(sq.Eq{"key": key})

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build SQL query for DeleteState: %w", err)
	}

	_, err = db.Exec(sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to execute delete state for %s: %w", key, err)
	}
	return nil
}

// StateStore adapts the app_state table to the storage interface consumed by
// the favorites store.
type StateStore struct {
	DB *sql.DB
}

func (s *StateStore) Get(key string) (string, bool, error) {
	value, err := GetState(s.DB, key)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *StateStore) Set(key, value string) error {
	return SetState(s.DB, key, value)
}

func (s *StateStore) Delete(key string) error {
	return DeleteState(s.DB, key)
}
