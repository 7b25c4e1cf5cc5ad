package repository

import (
	"context"
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
)

// SearchStore manages job search persistence. It is a simple record store
// keyed by search id: each search row carries its owned collections
// (opportunities, recruiters, resources, log) whole.
type SearchStore interface {
	LoadSearches(ctx context.Context, userID string) ([]*search.JobSearch, error)
	SaveSearch(ctx context.Context, userID string, s *search.JobSearch) (string, error)
	CloseSearch(ctx context.Context, id string, closedDate time.Time) error
	DeleteSearch(ctx context.Context, id string) error
}
