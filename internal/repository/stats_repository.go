package repository

import (
	"context"
	"fmt"

	"restaurant-hub/internal/database"
	"restaurant-hub/internal/model"

	"github.com/rs/zerolog"
)

// statsRepository implements StatsRepository using PostgreSQL.
type statsRepository struct {
	db     *database.DB
	logger zerolog.Logger
}

// NewStatsRepository creates a new PostgreSQL-backed stats repository.
func NewStatsRepository(db *database.DB, logger zerolog.Logger) StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger.With().Str("repository", "stats").Logger(),
	}
}

// Stats retrieves the dashboard counters in a single round trip.
func (r *statsRepository) Stats(ctx context.Context) (*model.DashboardStats, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		SELECT
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM menu_items),
			(SELECT COUNT(*) FROM menu_items WHERE is_available = true),
			(SELECT COUNT(*) FROM menu_items WHERE is_featured = true),
			(SELECT COUNT(*) FROM menu_items WHERE has_discount = true),
			(SELECT COUNT(*) FROM site_images),
			(SELECT COUNT(*) FROM menu_images)
	`

	var s model.DashboardStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalCategories, &s.TotalItems, &s.AvailableItems,
		&s.FeaturedItems, &s.ItemsWithDiscount,
		&s.TotalSiteImages, &s.TotalMenuImages,
	)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query dashboard stats")
		return nil, fmt.Errorf("failed to query dashboard stats: %w", err)
	}

	return &s, nil
}
