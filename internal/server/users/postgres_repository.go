package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/dmitrijs2005/studytrack/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create checks for an existing username or email and inserts the row in a
// single transaction. The UNIQUE constraints remain the final word: a
// concurrent insert committed between the check and the insert surfaces as
// a 23505, which maps to the same common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	existsQuery :=
		`SELECT EXISTS (
		   SELECT 1 FROM users WHERE username = $1 OR email = $2
		 )
		 `

	insertQuery :=
		`INSERT INTO users (id, username, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, existsQuery, user.Username, user.Email).Scan(&exists); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		if err := tx.QueryRowContext(ctx, insertQuery,
			user.ID, user.Username, user.Email, user.PasswordHash).Scan(&user.CreatedAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return common.ErrorAlreadyExists
			}
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, username, email, password_hash, created_at FROM users
		 WHERE email = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM users WHERE username = $1 OR email = $2
		 )
		 `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, username, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}
