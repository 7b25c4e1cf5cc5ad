package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
)

// SearchStore is a mock for repository.SearchStore.
type SearchStore struct {
	mock.Mock
}

func (m *SearchStore) LoadSearches(ctx context.Context, userID string) ([]*search.JobSearch, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]*search.JobSearch); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SearchStore) SaveSearch(ctx context.Context, userID string, js *search.JobSearch) (string, error) {
	args := m.Called(ctx, userID, js)
	return args.String(0), args.Error(1)
}

func (m *SearchStore) CloseSearch(ctx context.Context, id string, closedDate time.Time) error {
	args := m.Called(ctx, id, closedDate)
	return args.Error(0)
}

func (m *SearchStore) DeleteSearch(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
