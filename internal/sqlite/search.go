package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/search"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/repository"
)

// SearchStore implements repository.SearchStore for SQLite. Each search is
// one row: lifecycle fields live in indexed columns, the owned collections
// travel as a JSON payload — a document store keyed by search id.
type SearchStore struct {
	db *DB
}

// NewSearchStore creates a new SearchStore
func NewSearchStore(db *DB) *SearchStore {
	return &SearchStore{db: db}
}

// payload is the JSON document holding a search's owned collections.
type payload struct {
	Opportunities []opportunity.Opportunity `json:"opportunities"`
	Recruiters    []search.Recruiter        `json:"recruiters"`
	Resources     []search.OnlineResource   `json:"resources"`
	Log           []joblog.Entry            `json:"log"`
}

// LoadSearches returns every search for the user, oldest first.
func (r *SearchStore) LoadSearches(ctx context.Context, userID string) ([]*search.JobSearch, error) {
	query := `
		SELECT id, name, is_active, closed, closed_date, created_at, payload
		FROM job_searches
		WHERE user_id = ?
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load searches: %w", err)
	}
	defer rows.Close()

	var searches []*search.JobSearch
	for rows.Next() {
		var (
			js         search.JobSearch
			isActive   int
			closedDate sql.NullTime
			doc        string
		)
		if err := rows.Scan(&js.ID, &js.Name, &isActive, &js.Closed, &closedDate, &js.CreatedAt, &doc); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		js.IsActive = isActive != 0
		if closedDate.Valid {
			js.ClosedDate = &closedDate.Time
		}
		var p payload
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			return nil, fmt.Errorf("failed to decode search payload: %w", err)
		}
		js.Opportunities = p.Opportunities
		js.Recruiters = p.Recruiters
		js.Resources = p.Resources
		js.Log = p.Log
		searches = append(searches, &js)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate searches: %w", err)
	}

	return searches, nil
}

// SaveSearch upserts a search. An empty id signals a create; the generated
// id is returned.
func (r *SearchStore) SaveSearch(ctx context.Context, userID string, js *search.JobSearch) (string, error) {
	id := js.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := js.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	doc, err := json.Marshal(payload{
		Opportunities: js.Opportunities,
		Recruiters:    js.Recruiters,
		Resources:     js.Resources,
		Log:           js.Log,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode search payload: %w", err)
	}

	query := `
		INSERT INTO job_searches (id, user_id, name, is_active, closed, closed_date, created_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			is_active = excluded.is_active,
			closed = excluded.closed,
			closed_date = excluded.closed_date,
			payload = excluded.payload
	`

	var closedDate any
	if js.ClosedDate != nil {
		closedDate = *js.ClosedDate
	}
	isActive := 0
	if js.IsActive {
		isActive = 1
	}
	if _, err := r.db.ExecContext(ctx, query, id, userID, js.Name, isActive, js.Closed, closedDate, createdAt, string(doc)); err != nil {
		return "", fmt.Errorf("failed to save search: %w", err)
	}

	return id, nil
}

// CloseSearch marks a search closed without touching its payload.
func (r *SearchStore) CloseSearch(ctx context.Context, id string, closedDate time.Time) error {
	query := `
		UPDATE job_searches
		SET closed = 1, closed_date = ?, is_active = 0
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, closedDate, id)
	if err != nil {
		return fmt.Errorf("failed to close search: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check close result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// DeleteSearch permanently removes a search. A missing row is treated as an
// already-deleted success case.
func (r *SearchStore) DeleteSearch(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM job_searches WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete search: %w", err)
	}
	return nil
}
