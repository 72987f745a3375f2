package favorites

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockPersistence struct {
	mock.Mock
}

func (m *mockPersistence) Read(ctx context.Context, owner uuid.UUID) ([]string, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockPersistence) Write(ctx context.Context, owner uuid.UUID, codes []string) error {
	args := m.Called(ctx, owner, codes)
	return args.Error(0)
}
