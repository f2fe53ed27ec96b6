package repository

import (
	"context"
	"fmt"

	"restaurant-hub/internal/database"
	"restaurant-hub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const menuImageReturning = `id, menu_item_id, image_url, public_id, is_main, created_at`

// menuImageRepository implements MenuImageRepository using PostgreSQL.
type menuImageRepository struct {
	db     *database.DB
	logger zerolog.Logger
}

// NewMenuImageRepository creates a new PostgreSQL-backed menu image repository.
func NewMenuImageRepository(db *database.DB, logger zerolog.Logger) MenuImageRepository {
	return &menuImageRepository{
		db:     db,
		logger: logger.With().Str("repository", "menu_image").Logger(),
	}
}

// ListByMenuItem retrieves an item's images, main image first then id.
func (r *menuImageRepository) ListByMenuItem(ctx context.Context, menuItemID int) ([]model.MenuImage, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		SELECT ` + menuImageReturning + `
		FROM menu_images
		WHERE menu_item_id = $1
		ORDER BY is_main DESC, id
	`

	rows, err := r.db.Query(ctx, query, menuItemID)
	if err != nil {
		r.logger.Error().Err(err).Int("menu_item_id", menuItemID).Msg("failed to query menu images")
		return nil, fmt.Errorf("failed to query menu images: %w", err)
	}
	defer rows.Close()

	var images []model.MenuImage
	for rows.Next() {
		var img model.MenuImage
		err := rows.Scan(&img.ID, &img.MenuItemID, &img.ImageURL, &img.PublicID, &img.IsMain, &img.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu image row")
			return nil, fmt.Errorf("failed to scan menu image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu image rows")
		return nil, fmt.Errorf("error iterating menu images: %w", err)
	}

	return images, nil
}

// Create inserts a new menu image. The main-image decision and the
// insert share one transaction so concurrent uploads cannot both
// become main.
func (r *menuImageRepository) Create(ctx context.Context, img *model.MenuImage) (*model.MenuImage, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	var created *model.MenuImage
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var count int
		err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM menu_images WHERE menu_item_id = $1`,
			img.MenuItemID,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to count menu images: %w", err)
		}

		var m model.MenuImage
		err = tx.QueryRow(ctx, `
			INSERT INTO menu_images (menu_item_id, image_url, public_id, is_main)
			VALUES ($1, $2, $3, $4)
			RETURNING `+menuImageReturning,
			img.MenuItemID, img.ImageURL, img.PublicID, count == 0,
		).Scan(&m.ID, &m.MenuItemID, &m.ImageURL, &m.PublicID, &m.IsMain, &m.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create menu image: %w", err)
		}

		created = &m
		return nil
	})
	if err != nil {
		r.logger.Error().Err(err).Int("menu_item_id", img.MenuItemID).Msg("failed to create menu image")
		return nil, err
	}

	r.logger.Debug().
		Int("menu_image_id", created.ID).
		Int("menu_item_id", created.MenuItemID).
		Bool("is_main", created.IsMain).
		Msg("menu image created")
	return created, nil
}
