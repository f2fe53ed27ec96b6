package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-hub/internal/database"
	"restaurant-hub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// categoryColumns maps wire field names to storage column names. The
// mapping is static; values are always passed positionally.
var categoryColumns = map[string]string{
	"name":        "name",
	"description": "description",
	"orderIndex":  "order_index",
}

const categoryReturning = `id, name, description, order_index, created_at, updated_at`

// categoryRepository implements CategoryRepository using PostgreSQL.
type categoryRepository struct {
	db     *database.DB
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(db *database.DB, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

func scanCategory(row pgx.Row) (*model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.OrderIndex, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List retrieves all categories ordered by (order_index, id).
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		SELECT ` + categoryReturning + `
		FROM categories
		ORDER BY order_index, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.OrderIndex, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *categoryRepository) GetByID(ctx context.Context, id int) (*model.Category, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		SELECT ` + categoryReturning + `
		FROM categories
		WHERE id = $1
	`

	c, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return c, nil
}

// Create inserts a new category inside a transaction and returns the
// stored row.
func (r *categoryRepository) Create(ctx context.Context, in *model.CategoryCreate) (*model.Category, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		INSERT INTO categories (name, description, order_index)
		VALUES ($1, $2, $3)
		RETURNING ` + categoryReturning

	var created *model.Category
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		created, err = scanCategory(tx.QueryRow(ctx, query, in.Name, in.Description, in.OrderIndex))
		return err
	})
	if err != nil {
		r.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Debug().Int("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

// Update writes only the supplied fields. Returns nil when the
// category does not exist.
func (r *categoryRepository) Update(ctx context.Context, id int, in *model.CategoryUpdate) (*model.Category, error) {
	var sets []string
	var args []any
	set := func(wireField string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", categoryColumns[wireField], len(args)))
	}

	if in.Name != nil {
		set("name", *in.Name)
	}
	if in.Description != nil {
		set("description", *in.Description)
	}
	if in.OrderIndex != nil {
		set("orderIndex", *in.OrderIndex)
	}

	if len(sets) == 0 {
		return nil, model.ErrNoFieldsToUpdate
	}

	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE categories
		SET %s, updated_at = NOW()
		WHERE id = $%d
		RETURNING `+categoryReturning,
		strings.Join(sets, ", "), len(args))

	var updated *model.Category
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		updated, err = scanCategory(tx.QueryRow(ctx, query, args...))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("category_id", id).Msg("category not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	r.logger.Debug().Int("category_id", updated.ID).Msg("category updated")
	return updated, nil
}

// Delete removes a category. Existence and the dependent-item check
// run inside the same transaction as the delete.
func (r *categoryRepository) Delete(ctx context.Context, id int) (string, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	var name string
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `SELECT name FROM categories WHERE id = $1`, id).Scan(&name)
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrCategoryNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to query category: %w", err)
		}

		var count int
		err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items WHERE category_id = $1`, id).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to count dependent menu items: %w", err)
		}
		if count > 0 {
			return &model.DependentItemsError{Count: count}
		}

		_, err = tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		var dep *model.DependentItemsError
		if errors.Is(err, model.ErrCategoryNotFound) || errors.As(err, &dep) {
			return "", err
		}
		r.logger.Error().Err(err).Int("category_id", id).Msg("failed to delete category")
		return "", err
	}

	r.logger.Debug().Int("category_id", id).Str("name", name).Msg("category deleted")
	return name, nil
}
