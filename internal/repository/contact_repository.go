package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant-hub/internal/database"
	"restaurant-hub/internal/model"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const contactColumns = `phone, address, email, opening_hours,
		monday_hours, tuesday_hours, wednesday_hours, thursday_hours,
		friday_hours, saturday_hours, sunday_hours,
		whatsapp, telegram, max, map_embed_url, social_links, updated_at`

// contactRepository implements ContactRepository using PostgreSQL.
// The contact_info table holds at most one meaningful row; reads take
// the latest row and writes update it in place.
type contactRepository struct {
	db     *database.DB
	logger zerolog.Logger
}

// NewContactRepository creates a new PostgreSQL-backed contact repository.
func NewContactRepository(db *database.DB, logger zerolog.Logger) ContactRepository {
	return &contactRepository{
		db:     db,
		logger: logger.With().Str("repository", "contact").Logger(),
	}
}

func scanContact(row pgx.Row) (*model.ContactInfo, error) {
	var c model.ContactInfo
	var socialLinks []byte
	err := row.Scan(
		&c.Phone, &c.Address, &c.Email, &c.OpeningHours,
		&c.MondayHours, &c.TuesdayHours, &c.WednesdayHours, &c.ThursdayHours,
		&c.FridayHours, &c.SaturdayHours, &c.SundayHours,
		&c.Whatsapp, &c.Telegram, &c.Max, &c.MapEmbedURL, &socialLinks, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(socialLinks) > 0 {
		// A malformed stored value falls back to empty links rather
		// than failing the read.
		if err := json.Unmarshal(socialLinks, &c.SocialLinks); err != nil {
			c.SocialLinks = model.SocialLinks{}
		}
	}
	return &c, nil
}

// Get retrieves the singleton contact record, or nil when the table is
// empty.
func (r *contactRepository) Get(ctx context.Context) (*model.ContactInfo, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	query := `
		SELECT ` + contactColumns + `
		FROM contact_info
		ORDER BY id DESC
		LIMIT 1
	`

	c, err := scanContact(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Msg("no contact info stored yet")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query contact info")
		return nil, fmt.Errorf("failed to query contact info: %w", err)
	}

	return c, nil
}

// Upsert replaces the singleton record inside one transaction,
// creating it on first write.
func (r *contactRepository) Upsert(ctx context.Context, in *model.ContactInfo) (*model.ContactInfo, error) {
	ctx, cancel := r.db.OpBound(ctx)
	defer cancel()

	socialLinks, err := json.Marshal(in.SocialLinks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode social links: %w", err)
	}

	var saved *model.ContactInfo
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var existingID int
		err := tx.QueryRow(ctx, `SELECT id FROM contact_info ORDER BY id DESC LIMIT 1`).Scan(&existingID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to query contact info: %w", err)
		}

		args := []any{
			in.Phone, in.Address, in.Email, in.OpeningHours,
			in.MondayHours, in.TuesdayHours, in.WednesdayHours, in.ThursdayHours,
			in.FridayHours, in.SaturdayHours, in.SundayHours,
			in.Whatsapp, in.Telegram, in.Max, in.MapEmbedURL, socialLinks,
		}

		var row pgx.Row
		if errors.Is(err, pgx.ErrNoRows) {
			row = tx.QueryRow(ctx, `
				INSERT INTO contact_info
					(phone, address, email, opening_hours,
					 monday_hours, tuesday_hours, wednesday_hours, thursday_hours,
					 friday_hours, saturday_hours, sunday_hours,
					 whatsapp, telegram, max, map_embed_url, social_links)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
				RETURNING `+contactColumns, args...)
		} else {
			row = tx.QueryRow(ctx, `
				UPDATE contact_info
				SET phone = $1, address = $2, email = $3, opening_hours = $4,
					monday_hours = $5, tuesday_hours = $6, wednesday_hours = $7, thursday_hours = $8,
					friday_hours = $9, saturday_hours = $10, sunday_hours = $11,
					whatsapp = $12, telegram = $13, max = $14, map_embed_url = $15, social_links = $16,
					updated_at = NOW()
				WHERE id = $17
				RETURNING `+contactColumns, append(args, existingID)...)
		}

		saved, err = scanContact(row)
		return err
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to upsert contact info")
		return nil, fmt.Errorf("failed to upsert contact info: %w", err)
	}

	r.logger.Debug().Msg("contact info saved")
	return saved, nil
}
