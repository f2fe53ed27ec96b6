package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"restaurant-hub/internal/model"
	"restaurant-hub/internal/realtime"
	"restaurant-hub/internal/repository"
)

// contactService implements ContactService.
type contactService struct {
	contactRepo repository.ContactRepository
	publisher   Publisher
	logger      zerolog.Logger
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo repository.ContactRepository, publisher Publisher, logger zerolog.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		publisher:   publisher,
		logger:      logger.With().Str("service", "contact").Logger(),
	}
}

// Get retrieves the current contact info, or nil when unset.
func (s *contactService) Get(ctx context.Context) (*model.ContactInfo, error) {
	info, err := s.contactRepo.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get contact info")
		return nil, fmt.Errorf("failed to get contact info: %w", err)
	}
	return info, nil
}

// Save replaces the contact info and broadcasts the change.
func (s *contactService) Save(ctx context.Context, in *model.ContactInfo) (*model.ContactInfo, error) {
	info, err := s.contactRepo.Upsert(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to save contact info")
		return nil, fmt.Errorf("failed to save contact info: %w", err)
	}

	s.logger.Info().Msg("contact info saved")
	s.publisher.Publish(realtime.EventContactInfoUpdated, realtime.ActionUpdate, info)

	return info, nil
}
