package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant-hub/internal/database"
	"restaurant-hub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const userColumns = `id, email, password, first_name, last_name, is_admin, created_at`

// userRepository implements UserRepository using PostgreSQL.
type userRepository struct {
	db     *database.DB
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(db *database.DB, logger zerolog.Logger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail retrieves a user by case-insensitive email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("email", email).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

// GetByID retrieves a user by id.
func (r *userRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("user_id", id).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("user_id", id).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

// Create inserts a new user inside a transaction and returns the
// stored row.
func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		INSERT INTO users (email, password, first_name, last_name, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	var created *model.User
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		created, err = scanUser(tx.QueryRow(ctx, query,
			user.Email, user.PasswordHash, user.FirstName, user.LastName, user.IsAdmin))
		return err
	})
	if err != nil {
		r.logger.Error().Err(err).Str("email", user.Email).Msg("failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Debug().Int("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}
