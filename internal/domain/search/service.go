package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/ids"
)

// Service is the session controller. It orchestrates the search lifecycle
// and every mutation, delegating persistence to the store. Mutations commit
// to the in-memory state first; saves are best-effort and a failure leaves
// the optimistic state in place — the error is logged, never surfaced to
// the caller or retried. After a successful save the state is re-derived
// from a full reload, which may replace in-memory objects with freshly
// fetched equivalents.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new session controller.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Load fetches the user's searches and derives the active one.
func (s *Service) Load(ctx context.Context, userID string) (*State, error) {
	searches, err := s.store.LoadSearches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading searches: %w", err)
	}
	st := &State{UserID: userID, Searches: searches}
	st.deriveCurrent()
	return st, nil
}

// CreateSearch starts a new campaign and makes it the active one,
// deactivating all siblings.
func (s *Service) CreateSearch(ctx context.Context, st *State, name string) (*JobSearch, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	for _, sibling := range st.Searches {
		if sibling.IsActive {
			sibling.IsActive = false
			s.persist(ctx, st, sibling)
		}
	}
	js := &JobSearch{
		ID:        ids.New(),
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	st.Searches = append(st.Searches, js)
	st.Current = js
	s.saveAndReload(ctx, st, js)
	return st.Current, nil
}

// ActivateSearch makes the given search the active one, deactivating all
// siblings.
func (s *Service) ActivateSearch(ctx context.Context, st *State, id string) error {
	target := st.find(id)
	if target == nil {
		return ErrSearchNotFound
	}
	for _, sibling := range st.Searches {
		if sibling.IsActive && sibling.ID != id {
			sibling.IsActive = false
			s.persist(ctx, st, sibling)
		}
	}
	target.IsActive = true
	st.Current = target
	s.saveAndReload(ctx, st, target)
	return nil
}

// CloseSearch soft-closes a search, returning it to the archive list. The
// store receives a partial update of only the closed flag and date.
func (s *Service) CloseSearch(ctx context.Context, st *State, id string) error {
	target := st.find(id)
	if target == nil {
		return ErrSearchNotFound
	}
	now := time.Now()
	target.Closed = 1
	target.ClosedDate = &now
	target.IsActive = false
	if err := s.store.CloseSearch(ctx, id, now); err != nil {
		s.logger.Error("closing job search", "search", id, "error", err)
	} else {
		s.reload(ctx, st)
	}
	st.deriveCurrent()
	return nil
}

// ReopenSearch restores a soft-closed search to the open list. It does not
// become active until explicitly activated.
func (s *Service) ReopenSearch(ctx context.Context, st *State, id string) error {
	target := st.find(id)
	if target == nil {
		return ErrSearchNotFound
	}
	target.Closed = 0
	target.ClosedDate = nil
	s.saveAndReload(ctx, st, target)
	return nil
}

// DeleteSearch permanently removes a search. The local state drops it
// immediately, before and regardless of persistence confirmation; a store
// failure is logged only.
func (s *Service) DeleteSearch(ctx context.Context, st *State, id string) error {
	if st.find(id) == nil {
		return ErrSearchNotFound
	}
	kept := st.Searches[:0]
	for _, js := range st.Searches {
		if js.ID != id {
			kept = append(kept, js)
		}
	}
	st.Searches = kept
	if st.Current != nil && st.Current.ID == id {
		st.deriveCurrent()
	}
	if err := s.store.DeleteSearch(ctx, id); err != nil {
		s.logger.Error("deleting job search", "search", id, "error", err)
	}
	return nil
}

// current returns the active search or ErrNoCurrentSearch.
func (s *Service) current(st *State) (*JobSearch, error) {
	if st.Current == nil {
		return nil, ErrNoCurrentSearch
	}
	return st.Current, nil
}

// persist saves a search without re-deriving state, for sibling updates
// that piggyback on a larger operation.
func (s *Service) persist(ctx context.Context, st *State, js *JobSearch) {
	if _, err := s.store.SaveSearch(ctx, st.UserID, js); err != nil {
		s.logger.Error("saving job search", "search", js.ID, "error", err)
	}
}

// saveAndReload persists the search and, on success, re-derives the whole
// in-memory state from the store. A failed save or reload keeps the
// optimistic in-memory state with no rollback and no re-sync.
func (s *Service) saveAndReload(ctx context.Context, st *State, js *JobSearch) {
	id, err := s.store.SaveSearch(ctx, st.UserID, js)
	if err != nil {
		s.logger.Error("saving job search", "search", js.ID, "error", err)
		return
	}
	if js.ID == "" {
		js.ID = id
	}
	s.reload(ctx, st)
}

func (s *Service) reload(ctx context.Context, st *State) {
	fresh, err := s.store.LoadSearches(ctx, st.UserID)
	if err != nil {
		s.logger.Error("reloading job searches", "error", err)
		return
	}
	st.Searches = fresh
	st.deriveCurrent()
}

// appendEntry stamps an id on the entry and appends it to the search log.
func appendEntry(js *JobSearch, e joblog.Entry) {
	e.ID = ids.New()
	js.Log = append(js.Log, e)
}
