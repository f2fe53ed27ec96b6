package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"restaurant-hub/internal/model"
	"restaurant-hub/internal/realtime"
	"restaurant-hub/internal/repository"
)

// menuItemService implements MenuItemService.
type menuItemService struct {
	itemRepo     repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
	publisher    Publisher
	validate     *validator.Validate
	logger       zerolog.Logger
}

// NewMenuItemService creates a new menu item service.
func NewMenuItemService(itemRepo repository.MenuItemRepository, categoryRepo repository.CategoryRepository, publisher Publisher, logger zerolog.Logger) MenuItemService {
	return &menuItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		validate:     validator.New(),
		logger:       logger.With().Str("service", "menu-item").Logger(),
	}
}

// List retrieves all menu items.
func (s *menuItemService) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// ListFeatured retrieves featured items that are available.
func (s *menuItemService) ListFeatured(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.itemRepo.ListFeatured(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list featured menu items")
		return nil, fmt.Errorf("failed to list featured menu items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single menu item.
func (s *menuItemService) GetByID(ctx context.Context, id int) (*model.MenuItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("item_id", id).Msg("failed to get menu item")
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if item == nil {
		return nil, model.ErrMenuItemNotFound
	}
	return item, nil
}

// Create validates and stores a new menu item and broadcasts the change.
// The referenced category must exist.
func (s *menuItemService) Create(ctx context.Context, in *model.MenuItemCreate) (*model.MenuItem, error) {
	if err := s.validate.Struct(in); err != nil {
		s.logger.Warn().Err(err).Msg("invalid menu item input")
		return nil, model.NewDomainError(model.ErrCodeValidation, "Name, price and category are required")
	}

	category, err := s.categoryRepo.GetByID(ctx, *in.CategoryID)
	if err != nil {
		s.logger.Error().Err(err).Int("category_id", *in.CategoryID).Msg("failed to check category")
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if category == nil {
		return nil, model.ErrCategoryNotFound
	}

	item, err := s.itemRepo.Create(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create menu item")
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info().Int("item_id", item.ID).Str("name", item.Name).Msg("menu item created")
	s.publisher.Publish(realtime.EventMenuItemCreated, realtime.ActionCreate, item)

	return item, nil
}

// Update applies a partial update and broadcasts the change.
func (s *menuItemService) Update(ctx context.Context, id int, in *model.MenuItemUpdate) (*model.MenuItem, error) {
	if in.IsEmpty() {
		return nil, model.ErrNoFieldsToUpdate
	}

	if in.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			s.logger.Error().Err(err).Int("category_id", *in.CategoryID).Msg("failed to check category")
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if category == nil {
			return nil, model.ErrCategoryNotFound
		}
	}

	item, err := s.itemRepo.Update(ctx, id, in)
	if err != nil {
		s.logger.Error().Err(err).Int("item_id", id).Msg("failed to update menu item")
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	if item == nil {
		return nil, model.ErrMenuItemNotFound
	}

	s.logger.Info().Int("item_id", item.ID).Msg("menu item updated")
	s.publisher.Publish(realtime.EventMenuItemUpdated, realtime.ActionUpdate, item)

	return item, nil
}

// Delete removes a menu item and broadcasts the change.
func (s *menuItemService) Delete(ctx context.Context, id int) error {
	name, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int("item_id", id).Msg("failed to delete menu item")
		return err
	}

	s.logger.Info().Int("item_id", id).Str("name", name).Msg("menu item deleted")
	s.publisher.Publish(realtime.EventMenuItemDeleted, realtime.ActionDelete, map[string]any{
		"id":   id,
		"name": name,
	})

	return nil
}
