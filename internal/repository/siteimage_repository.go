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

const siteImageReturning = `id, image_type, image_url, public_id, alt_text, description, created_at, updated_at`

// siteImageRepository implements SiteImageRepository using PostgreSQL.
type siteImageRepository struct {
	db     *database.DB
	logger zerolog.Logger
}

// NewSiteImageRepository creates a new PostgreSQL-backed site image repository.
func NewSiteImageRepository(db *database.DB, logger zerolog.Logger) SiteImageRepository {
	return &siteImageRepository{
		db:     db,
		logger: logger.With().Str("repository", "site_image").Logger(),
	}
}

func scanSiteImage(row pgx.Row) (*model.SiteImage, error) {
	var img model.SiteImage
	err := row.Scan(&img.ID, &img.ImageType, &img.ImageURL, &img.PublicID,
		&img.AltText, &img.Description, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// List retrieves all site images, newest first.
func (r *siteImageRepository) List(ctx context.Context) ([]model.SiteImage, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		SELECT ` + siteImageReturning + `
		FROM site_images
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query site images")
		return nil, fmt.Errorf("failed to query site images: %w", err)
	}
	defer rows.Close()

	var images []model.SiteImage
	for rows.Next() {
		var img model.SiteImage
		err := rows.Scan(&img.ID, &img.ImageType, &img.ImageURL, &img.PublicID,
			&img.AltText, &img.Description, &img.CreatedAt, &img.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan site image row")
			return nil, fmt.Errorf("failed to scan site image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating site image rows")
		return nil, fmt.Errorf("error iterating site images: %w", err)
	}

	return images, nil
}

// GetByID retrieves a single site image by its ID.
func (r *siteImageRepository) GetByID(ctx context.Context, id int) (*model.SiteImage, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		SELECT ` + siteImageReturning + `
		FROM site_images
		WHERE id = $1
	`

	img, err := scanSiteImage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("site_image_id", id).Msg("site image not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("site_image_id", id).Msg("failed to query site image")
		return nil, fmt.Errorf("failed to query site image: %w", err)
	}

	return img, nil
}

// Create inserts a new site image record inside a transaction.
func (r *siteImageRepository) Create(ctx context.Context, img *model.SiteImage) (*model.SiteImage, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		INSERT INTO site_images (image_type, image_url, public_id, alt_text, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + siteImageReturning

	var created *model.SiteImage
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		created, err = scanSiteImage(tx.QueryRow(ctx, query,
			img.ImageType, img.ImageURL, img.PublicID, img.AltText, img.Description))
		return err
	})
	if err != nil {
		r.logger.Error().Err(err).Str("image_type", img.ImageType).Msg("failed to create site image")
		return nil, fmt.Errorf("failed to create site image: %w", err)
	}

	r.logger.Debug().Int("site_image_id", created.ID).Msg("site image created")
	return created, nil
}

// Delete removes a site image record inside a transaction.
func (r *siteImageRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM site_images WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete site image: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrImageNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, model.ErrImageNotFound) {
			r.logger.Error().Err(err).Int("site_image_id", id).Msg("failed to delete site image")
		}
		return err
	}

	r.logger.Debug().Int("site_image_id", id).Msg("site image deleted")
	return nil
}
