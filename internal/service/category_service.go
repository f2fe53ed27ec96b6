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

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	publisher    Publisher
	validate     *validator.Validate
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, publisher Publisher, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		publisher:    publisher,
		validate:     validator.New(),
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// List retrieves all categories in display order.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Create validates and stores a new category and broadcasts the change.
func (s *categoryService) Create(ctx context.Context, in *model.CategoryCreate) (*model.Category, error) {
	if err := s.validate.Struct(in); err != nil {
		s.logger.Warn().Err(err).Msg("invalid category input")
		return nil, model.NewDomainError(model.ErrCodeValidation, "Category name is required")
	}

	category, err := s.categoryRepo.Create(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().Int("category_id", category.ID).Str("name", category.Name).Msg("category created")
	s.publisher.Publish(realtime.EventCategoryCreated, realtime.ActionCreate, category)

	return category, nil
}

// Update applies a partial update and broadcasts the change.
func (s *categoryService) Update(ctx context.Context, id int, in *model.CategoryUpdate) (*model.Category, error) {
	if in.IsEmpty() {
		return nil, model.ErrNoFieldsToUpdate
	}

	category, err := s.categoryRepo.Update(ctx, id, in)
	if err != nil {
		s.logger.Error().Err(err).Int("category_id", id).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if category == nil {
		return nil, model.ErrCategoryNotFound
	}

	s.logger.Info().Int("category_id", category.ID).Msg("category updated")
	s.publisher.Publish(realtime.EventCategoryUpdated, realtime.ActionUpdate, category)

	return category, nil
}

// Delete removes a category and broadcasts the change. Refused when
// menu items still reference the category.
func (s *categoryService) Delete(ctx context.Context, id int) error {
	name, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int("category_id", id).Msg("failed to delete category")
		return err
	}

	s.logger.Info().Int("category_id", id).Str("name", name).Msg("category deleted")
	s.publisher.Publish(realtime.EventCategoryDeleted, realtime.ActionDelete, map[string]any{
		"id":   id,
		"name": name,
	})

	return nil
}
