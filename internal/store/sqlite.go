package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/biohash-labs/biohash/internal/common"
	"github.com/biohash-labs/biohash/internal/dbx"
	"github.com/biohash-labs/biohash/internal/models"
	"github.com/biohash-labs/biohash/internal/store/migrations/sqlite"
)

// SQLiteRepository stores records in a local SQLite database. Insertion
// order is preserved via the implicit rowid.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository wraps an already-open database handle. The caller
// is responsible for running migrations.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// OpenSQLite opens the database at dsn, runs migrations, and returns a
// ready repository. The modernc.org/sqlite driver must be registered by
// the importing binary.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunSQLiteMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return NewSQLiteRepository(db), nil
}

// RunSQLiteMigrations applies the embedded goose migrations.
func RunSQLiteMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(sqlite.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// Create inserts a record inside a transaction: the existence check and
// the insert commit together, which keeps duplicate detection uniform
// across SQL backends without parsing driver-specific constraint errors.
func (r *SQLiteRepository) Create(ctx context.Context, user *models.UserRecord) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM users WHERE username = ?`, user.Username).Scan(&exists)
		if err == nil {
			return common.ErrorDuplicateUser
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("db error: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (id, username, salt, biometric_hash, encrypted_totp_secret, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			user.ID, user.Username, user.Salt, user.BiometricHash, user.EncryptedTotpSecret, user.CreatedAt)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	user := &models.UserRecord{}

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, salt, biometric_hash, encrypted_totp_secret, created_at
		 FROM users WHERE username = ?`, username).
		Scan(&user.ID, &user.Username, &user.Salt, &user.BiometricHash, &user.EncryptedTotpSecret, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLiteRepository) ListUsernames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT username FROM users ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return names, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
