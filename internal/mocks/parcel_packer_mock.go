// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockParcelPacker struct {
	mock.Mock
}

func (m *MockParcelPacker) Pack(items []model.Item, catalog []model.BoxDefinition) ([]model.Parcel, error) {
	args := m.Called(items, catalog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Parcel), args.Error(1)
}

func (m *MockParcelPacker) InvalidateCache() {
	m.Called()
}
