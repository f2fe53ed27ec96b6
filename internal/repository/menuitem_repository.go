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

// menuItemColumns maps wire field names to storage column names.
var menuItemColumns = map[string]string{
	"name":               "name",
	"description":        "description",
	"details":            "details",
	"price":              "price",
	"originalPrice":      "original_price",
	"categoryId":         "category_id",
	"isAvailable":        "is_available",
	"isFeatured":         "is_featured",
	"hasDiscount":        "has_discount",
	"discountPercentage": "discount_percentage",
	"imageUrl":           "image_url",
}

const menuItemReturning = `id, name, description, details, price, original_price,
		category_id, is_available, is_featured, has_discount,
		discount_percentage, image_url, created_at, updated_at`

// menuItemRepository implements MenuItemRepository using PostgreSQL.
type menuItemRepository struct {
	db     *database.DB
	logger zerolog.Logger
}

// NewMenuItemRepository creates a new PostgreSQL-backed menu item repository.
func NewMenuItemRepository(db *database.DB, logger zerolog.Logger) MenuItemRepository {
	return &menuItemRepository{
		db:     db,
		logger: logger.With().Str("repository", "menu_item").Logger(),
	}
}

func scanMenuItem(row pgx.Row) (*model.MenuItem, error) {
	var m model.MenuItem
	err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.Details, &m.Price, &m.OriginalPrice,
		&m.CategoryID, &m.IsAvailable, &m.IsFeatured, &m.HasDiscount,
		&m.DiscountPercentage, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *menuItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]model.MenuItem, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		err := rows.Scan(
			&m.ID, &m.Name, &m.Description, &m.Details, &m.Price, &m.OriginalPrice,
			&m.CategoryID, &m.IsAvailable, &m.IsFeatured, &m.HasDiscount,
			&m.DiscountPercentage, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// List retrieves all menu items, newest first.
func (r *menuItemRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT ` + menuItemReturning + `
		FROM menu_items
		ORDER BY created_at DESC
	`
	return r.queryItems(ctx, query)
}

// ListFeatured retrieves featured items that are currently available.
func (r *menuItemRepository) ListFeatured(ctx context.Context) ([]model.MenuItem, error) {
	query := `
		SELECT ` + menuItemReturning + `
		FROM menu_items
		WHERE is_featured = true AND is_available = true
		ORDER BY created_at DESC
	`
	return r.queryItems(ctx, query)
}

// GetByID retrieves a single menu item by its ID.
func (r *menuItemRepository) GetByID(ctx context.Context, id int) (*model.MenuItem, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		SELECT ` + menuItemReturning + `
		FROM menu_items
		WHERE id = $1
	`

	m, err := scanMenuItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("menu_item_id", id).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("menu_item_id", id).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return m, nil
}

// Create inserts a new menu item inside a transaction and returns the
// stored row. Availability defaults to true when omitted.
func (r *menuItemRepository) Create(ctx context.Context, in *model.MenuItemCreate) (*model.MenuItem, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	isAvailable := true
	if in.IsAvailable != nil {
		isAvailable = *in.IsAvailable
	}

	query := `
		INSERT INTO menu_items (
			name, description, details, price, original_price,
			category_id, is_available, is_featured, has_discount,
			discount_percentage, image_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + menuItemReturning

	var created *model.MenuItem
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		created, err = scanMenuItem(tx.QueryRow(ctx, query,
			in.Name, in.Description, in.Details, *in.Price, in.OriginalPrice,
			*in.CategoryID, isAvailable, in.IsFeatured, in.HasDiscount,
			in.DiscountPercentage, in.ImageURL,
		))
		return err
	})
	if err != nil {
		r.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create menu item")
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Debug().Int("menu_item_id", created.ID).Str("name", created.Name).Msg("menu item created")
	return created, nil
}

// Update writes only the supplied fields. Returns nil when the item
// does not exist.
func (r *menuItemRepository) Update(ctx context.Context, id int, in *model.MenuItemUpdate) (*model.MenuItem, error) {
	var sets []string
	var args []any
	set := func(wireField string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", menuItemColumns[wireField], len(args)))
	}

	if in.Name != nil {
		set("name", *in.Name)
	}
	if in.Description != nil {
		set("description", *in.Description)
	}
	if in.Details != nil {
		set("details", *in.Details)
	}
	if in.Price != nil {
		set("price", *in.Price)
	}
	if in.OriginalPrice != nil {
		set("originalPrice", *in.OriginalPrice)
	}
	if in.CategoryID != nil {
		set("categoryId", *in.CategoryID)
	}
	if in.IsAvailable != nil {
		set("isAvailable", *in.IsAvailable)
	}
	if in.IsFeatured != nil {
		set("isFeatured", *in.IsFeatured)
	}
	if in.HasDiscount != nil {
		set("hasDiscount", *in.HasDiscount)
	}
	if in.DiscountPercentage != nil {
		set("discountPercentage", *in.DiscountPercentage)
	}
	if in.ImageURL != nil {
		set("imageUrl", *in.ImageURL)
	}

	if len(sets) == 0 {
		return nil, model.ErrNoFieldsToUpdate
	}

	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE menu_items
		SET %s, updated_at = NOW()
		WHERE id = $%d
		RETURNING `+menuItemReturning,
		strings.Join(sets, ", "), len(args))

	var updated *model.MenuItem
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		updated, err = scanMenuItem(tx.QueryRow(ctx, query, args...))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("menu_item_id", id).Msg("menu item not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("menu_item_id", id).Msg("failed to update menu item")
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	r.logger.Debug().Int("menu_item_id", updated.ID).Msg("menu item updated")
	return updated, nil
}

// Delete removes a menu item after verifying it exists, inside one
// transaction.
func (r *menuItemRepository) Delete(ctx context.Context, id int) (string, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	var name string
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `SELECT name FROM menu_items WHERE id = $1`, id).Scan(&name)
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrMenuItemNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to query menu item: %w", err)
		}

		_, err = tx.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete menu item: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, model.ErrMenuItemNotFound) {
			r.logger.Error().Err(err).Int("menu_item_id", id).Msg("failed to delete menu item")
		}
		return "", err
	}

	r.logger.Debug().Int("menu_item_id", id).Str("name", name).Msg("menu item deleted")
	return name, nil
}
