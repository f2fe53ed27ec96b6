package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-hub/internal/model"
	"restaurant-hub/internal/realtime"
)

func TestContactService_Get(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		svc := NewContactService(mockRepo, &recordingPublisher{}, logger)

		stored := &model.ContactInfo{Phone: "+7 900 000 00 00", Email: "hello@example.com"}
		mockRepo.On("Get", ctx).Return(stored, nil)

		info, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, info)
	})

	t.Run("Unset returns nil without error", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		svc := NewContactService(mockRepo, &recordingPublisher{}, logger)

		mockRepo.On("Get", ctx).Return(nil, nil)

		info, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Nil(t, info)
	})
}

func TestContactService_Save(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	input := &model.ContactInfo{
		Phone:   "+7 900 000 00 00",
		Address: "Main Street 1",
		SocialLinks: model.SocialLinks{
			Instagram: "https://instagram.com/example",
		},
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		publisher := &recordingPublisher{}
		svc := NewContactService(mockRepo, publisher, logger)

		mockRepo.On("Upsert", ctx, input).Return(input, nil)

		info, err := svc.Save(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, input, info)

		events := publisher.all()
		require.Len(t, events, 1)
		assert.Equal(t, realtime.EventContactInfoUpdated, events[0].eventType)
		assert.Equal(t, realtime.ActionUpdate, events[0].action)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		publisher := &recordingPublisher{}
		svc := NewContactService(mockRepo, publisher, logger)

		mockRepo.On("Upsert", ctx, input).Return(nil, errors.New("database error"))

		info, err := svc.Save(ctx, input)
		require.Error(t, err)
		assert.Nil(t, info)
		assert.Empty(t, publisher.all())
	})
}
