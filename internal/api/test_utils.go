// test_utils.go: shared test doubles for API handler tests.

package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mcpdict/mcpdict-go/internal/datastore"
)

// MockDataStore implements datastore.Interface for handler tests.
type MockDataStore struct {
	mock.Mock
}

func (m *MockDataStore) Open() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockDataStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockDataStore) BuildVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDataStore) LookupReadings(ctx context.Context, chars []string) ([]datastore.ReadingRecord, error) {
	args := m.Called(ctx, chars)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]datastore.ReadingRecord), args.Error(1)
}

func (m *MockDataStore) ListLanguages(ctx context.Context) ([]datastore.LanguageRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]datastore.LanguageRow), args.Error(1)
}
