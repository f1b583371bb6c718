package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/guttosm/parcel-service/internal/mocks"
	"github.com/guttosm/parcel-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBoxCatalogService_List(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		setupMock     func(*mocks.MockBoxCatalogRepository)
		expectedError error
		expectedIDs   []string
	}{
		{
			name:  "default limit",
			limit: 0,
			setupMock: func(m *mocks.MockBoxCatalogRepository) {
				m.On("List", mock.Anything, 100).Return([]model.BoxDefinition{shoeBox}, nil)
			},
			expectedIDs: []string{"box_shoe"},
		},
		{
			name:  "explicit limit",
			limit: 5,
			setupMock: func(m *mocks.MockBoxCatalogRepository) {
				m.On("List", mock.Anything, 5).Return([]model.BoxDefinition{}, nil)
			},
			expectedIDs: []string{},
		},
		{
			name:  "repository error",
			limit: 10,
			setupMock: func(m *mocks.MockBoxCatalogRepository) {
				m.On("List", mock.Anything, 10).Return(nil, errors.New("read error"))
			},
			expectedError: errors.New("read error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockBoxCatalogRepository)
			tt.setupMock(mockRepo)

			svc := service.NewBoxCatalogService(mockRepo)
			boxes, err := svc.List(context.Background(), tt.limit)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, boxes)
			} else {
				assert.NoError(t, err)
				ids := make([]string, len(boxes))
				for i, b := range boxes {
					ids[i] = b.ID
				}
				assert.Equal(t, tt.expectedIDs, ids)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBoxCatalogService_Count(t *testing.T) {
	mockRepo := new(mocks.MockBoxCatalogRepository)
	mockRepo.On("Count", mock.Anything).Return(3, nil)

	svc := service.NewBoxCatalogService(mockRepo)
	n, err := svc.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestBoxCatalogService_NotConfigured(t *testing.T) {
	svc := service.NewBoxCatalogService(nil)

	_, err := svc.List(context.Background(), 10)
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	_, err = svc.Count(context.Background())
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}
