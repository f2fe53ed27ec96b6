package service

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"restaurant-hub/internal/model"
	"restaurant-hub/internal/realtime"
	"restaurant-hub/internal/repository"
	"restaurant-hub/internal/storage"
)

// imageService implements ImageService.
type imageService struct {
	siteImageRepo repository.SiteImageRepository
	menuImageRepo repository.MenuImageRepository
	itemRepo      repository.MenuItemRepository
	uploader      storage.Uploader
	publisher     Publisher
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewImageService creates a new image service.
func NewImageService(
	siteImageRepo repository.SiteImageRepository,
	menuImageRepo repository.MenuImageRepository,
	itemRepo repository.MenuItemRepository,
	uploader storage.Uploader,
	publisher Publisher,
	logger zerolog.Logger,
) ImageService {
	return &imageService{
		siteImageRepo: siteImageRepo,
		menuImageRepo: menuImageRepo,
		itemRepo:      itemRepo,
		uploader:      uploader,
		publisher:     publisher,
		validate:      validator.New(),
		logger:        logger.With().Str("service", "image").Logger(),
	}
}

// ListSiteImages retrieves all site images.
func (s *imageService) ListSiteImages(ctx context.Context) ([]model.SiteImage, error) {
	images, err := s.siteImageRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list site images")
		return nil, fmt.Errorf("failed to list site images: %w", err)
	}
	return images, nil
}

// UploadSiteImage stores the file, records the site image, and
// broadcasts the change. The stored object is deleted again when the
// record cannot be written.
func (s *imageService) UploadSiteImage(ctx context.Context, body io.Reader, filename string, meta *model.SiteImageUpload) (*model.SiteImage, error) {
	if err := s.validate.Struct(meta); err != nil {
		s.logger.Warn().Err(err).Msg("invalid site image metadata")
		return nil, model.NewDomainError(model.ErrCodeValidation, "Image type is required")
	}

	result, err := s.uploader.Upload(ctx, body, filename, "site")
	if err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("failed to upload site image")
		return nil, err
	}

	image, err := s.siteImageRepo.Create(ctx, &model.SiteImage{
		ImageType:   meta.ImageType,
		ImageURL:    result.URL,
		PublicID:    result.PublicID,
		AltText:     meta.AltText,
		Description: meta.Description,
	})
	if err != nil {
		// Remove the orphaned object before reporting the failure.
		if !s.uploader.Delete(ctx, result.PublicID) {
			s.logger.Warn().Str("public_id", result.PublicID).Msg("failed to clean up orphaned site image object")
		}
		s.logger.Error().Err(err).Str("filename", filename).Msg("failed to record site image")
		return nil, fmt.Errorf("failed to record site image: %w", err)
	}

	s.logger.Info().Int("image_id", image.ID).Str("image_type", image.ImageType).Msg("site image uploaded")
	s.publisher.Publish(realtime.EventSiteImageUploaded, realtime.ActionCreate, image)

	return image, nil
}

// DeleteSiteImage removes the record and its stored object, then
// broadcasts the change. A failed object delete is logged but does not
// fail the request.
func (s *imageService) DeleteSiteImage(ctx context.Context, id int) error {
	image, err := s.siteImageRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("image_id", id).Msg("failed to get site image")
		return fmt.Errorf("failed to get site image: %w", err)
	}
	if image == nil {
		return model.ErrImageNotFound
	}

	if err := s.siteImageRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("image_id", id).Msg("failed to delete site image")
		return err
	}

	if image.PublicID != "" && !s.uploader.Delete(ctx, image.PublicID) {
		s.logger.Warn().Str("public_id", image.PublicID).Msg("failed to delete stored site image object")
	}

	s.logger.Info().Int("image_id", id).Msg("site image deleted")
	s.publisher.Publish(realtime.EventSiteImageDeleted, realtime.ActionDelete, map[string]any{
		"id":         id,
		"image_type": image.ImageType,
	})

	return nil
}

// ListMenuImages retrieves a menu item's images, main image first.
func (s *imageService) ListMenuImages(ctx context.Context, menuItemID int) ([]model.MenuImage, error) {
	images, err := s.menuImageRepo.ListByMenuItem(ctx, menuItemID)
	if err != nil {
		s.logger.Error().Err(err).Int("item_id", menuItemID).Msg("failed to list menu images")
		return nil, fmt.Errorf("failed to list menu images: %w", err)
	}
	return images, nil
}

// UploadMenuImage stores the file, records the menu image, and
// broadcasts the change. The menu item must exist.
func (s *imageService) UploadMenuImage(ctx context.Context, menuItemID int, body io.Reader, filename string) (*model.MenuImage, error) {
	item, err := s.itemRepo.GetByID(ctx, menuItemID)
	if err != nil {
		s.logger.Error().Err(err).Int("item_id", menuItemID).Msg("failed to check menu item")
		return nil, fmt.Errorf("failed to check menu item: %w", err)
	}
	if item == nil {
		return nil, model.ErrMenuItemNotFound
	}

	result, err := s.uploader.Upload(ctx, body, filename, "menu")
	if err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("failed to upload menu image")
		return nil, err
	}

	image, err := s.menuImageRepo.Create(ctx, &model.MenuImage{
		MenuItemID: menuItemID,
		ImageURL:   result.URL,
		PublicID:   result.PublicID,
	})
	if err != nil {
		if !s.uploader.Delete(ctx, result.PublicID) {
			s.logger.Warn().Str("public_id", result.PublicID).Msg("failed to clean up orphaned menu image object")
		}
		s.logger.Error().Err(err).Str("filename", filename).Msg("failed to record menu image")
		return nil, fmt.Errorf("failed to record menu image: %w", err)
	}

	s.logger.Info().
		Int("image_id", image.ID).
		Int("item_id", menuItemID).
		Bool("is_main", image.IsMain).
		Msg("menu image uploaded")
	s.publisher.Publish(realtime.EventMenuImageUploaded, realtime.ActionCreate, image)

	return image, nil
}
