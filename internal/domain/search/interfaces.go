package search

import (
	"context"
	"time"
)

// Store is the persistence collaborator for job searches: a simple record
// store keyed by search id. Each search is saved and loaded whole, owned
// collections included.
type Store interface {
	// LoadSearches returns every search belonging to the user.
	LoadSearches(ctx context.Context, userID string) ([]*JobSearch, error)
	// SaveSearch upserts a search and returns its id. An empty id on the
	// search signals a create.
	SaveSearch(ctx context.Context, userID string, s *JobSearch) (string, error)
	// CloseSearch soft-closes a search (partial update of the closed flag
	// and closed date only).
	CloseSearch(ctx context.Context, id string, closedDate time.Time) error
	// DeleteSearch permanently removes a search. A missing row counts as
	// success: the caller already treats the search as gone.
	DeleteSearch(ctx context.Context, id string) error
}
