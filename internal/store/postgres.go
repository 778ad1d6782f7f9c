package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/biohash-labs/biohash/internal/common"
	"github.com/biohash-labs/biohash/internal/dbx"
	"github.com/biohash-labs/biohash/internal/models"
	"github.com/biohash-labs/biohash/internal/store/migrations/postgres"
)

// PostgresRepository stores records in PostgreSQL. Insertion order is
// preserved via a sequence column.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository wraps an already-open database handle. The
// caller is responsible for running migrations.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// OpenPostgres connects to dsn via the pgx stdlib driver, runs
// migrations, and returns a ready repository.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepository, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunPostgresMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return NewPostgresRepository(db), nil
}

// RunPostgresMigrations applies the embedded goose migrations.
func RunPostgresMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(postgres.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.UserRecord) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM users WHERE username = $1`, user.Username).Scan(&exists)
		if err == nil {
			return common.ErrorDuplicateUser
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("db error: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (id, username, salt, biometric_hash, encrypted_totp_secret, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			user.ID, user.Username, user.Salt, user.BiometricHash, user.EncryptedTotpSecret, user.CreatedAt)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	user := &models.UserRecord{}

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, salt, biometric_hash, encrypted_totp_secret, created_at
		 FROM users WHERE username = $1`, username).
		Scan(&user.ID, &user.Username, &user.Salt, &user.BiometricHash, &user.EncryptedTotpSecret, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) ListUsernames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT username FROM users ORDER BY seq`)
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

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
