// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockBoxCatalogRepository struct {
	mock.Mock
}

func (m *MockBoxCatalogRepository) List(ctx context.Context, limit int) ([]model.BoxDefinition, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BoxDefinition), args.Error(1)
}

func (m *MockBoxCatalogRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
