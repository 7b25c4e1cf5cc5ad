package search

import (
	"context"
	"strings"
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/ids"
)

// RecruiterInput carries the user-entered fields for a recruiter.
type RecruiterInput struct {
	Name      string
	Company   string
	Email     string
	Phone     string
	Specialty string
	Notes     string
}

// ResourceInput carries the user-entered fields for an online resource.
type ResourceInput struct {
	Name        string
	URL         string
	Category    string
	Description string
}

// AddRecruiter adds a recruiter to the current search.
func (s *Service) AddRecruiter(ctx context.Context, st *State, in RecruiterInput) (*Recruiter, error) {
	js, err := s.current(st)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalidInput
	}
	r := Recruiter{
		ID:        ids.New(),
		Name:      in.Name,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		Specialty: in.Specialty,
		Notes:     in.Notes,
	}
	js.Recruiters = append(js.Recruiters, r)
	s.saveAndReload(ctx, st, js)
	return &r, nil
}

// UpdateRecruiter replaces a recruiter's fields.
func (s *Service) UpdateRecruiter(ctx context.Context, st *State, id string, in RecruiterInput) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	r := js.RecruiterByID(id)
	if r == nil {
		return ErrRecruiterNotFound
	}
	r.Name = in.Name
	r.Company = in.Company
	r.Email = in.Email
	r.Phone = in.Phone
	r.Specialty = in.Specialty
	r.Notes = in.Notes
	s.saveAndReload(ctx, st, js)
	return nil
}

// DeleteRecruiter removes a recruiter. Log entries referencing it keep
// their weak reference and resolve to a placeholder on display.
func (s *Service) DeleteRecruiter(ctx context.Context, st *State, id string) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	kept := js.Recruiters[:0]
	found := false
	for _, r := range js.Recruiters {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrRecruiterNotFound
	}
	js.Recruiters = kept
	s.saveAndReload(ctx, st, js)
	return nil
}

// AddResource adds an online resource to the current search.
func (s *Service) AddResource(ctx context.Context, st *State, in ResourceInput) (*OnlineResource, error) {
	js, err := s.current(st)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.URL) == "" {
		return nil, ErrInvalidInput
	}
	r := OnlineResource{
		ID:          ids.New(),
		Name:        in.Name,
		URL:         in.URL,
		Category:    in.Category,
		Description: in.Description,
	}
	js.Resources = append(js.Resources, r)
	s.saveAndReload(ctx, st, js)
	return &r, nil
}

// UpdateResource replaces a resource's fields.
func (s *Service) UpdateResource(ctx context.Context, st *State, id string, in ResourceInput) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.URL) == "" {
		return ErrInvalidInput
	}
	r := js.ResourceByID(id)
	if r == nil {
		return ErrResourceNotFound
	}
	r.Name = in.Name
	r.URL = in.URL
	r.Category = in.Category
	r.Description = in.Description
	s.saveAndReload(ctx, st, js)
	return nil
}

// DeleteResource removes an online resource.
func (s *Service) DeleteResource(ctx context.Context, st *State, id string) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	kept := js.Resources[:0]
	found := false
	for _, r := range js.Resources {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrResourceNotFound
	}
	js.Resources = kept
	s.saveAndReload(ctx, st, js)
	return nil
}

// AddLogEntry appends a manual entry to the current search's log. Invalid
// input blocks the append without mutating anything.
func (s *Service) AddLogEntry(ctx context.Context, st *State, in joblog.EntryInput) (*joblog.Entry, error) {
	js, err := s.current(st)
	if err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	e := in.Entry()
	e.ID = ids.New()
	js.Log = append(js.Log, e)
	s.saveAndReload(ctx, st, js)
	return &e, nil
}

// UpdateLogEntry replaces a manual entry's fields after validation.
func (s *Service) UpdateLogEntry(ctx context.Context, st *State, id string, in joblog.EntryInput) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	for i := range js.Log {
		if js.Log[i].ID == id {
			e := in.Entry()
			e.ID = id
			js.Log[i] = e
			s.saveAndReload(ctx, st, js)
			return nil
		}
	}
	return ErrEntryNotFound
}

// DeleteLogEntry removes an entry from the log.
func (s *Service) DeleteLogEntry(ctx context.Context, st *State, id string) error {
	js, err := s.current(st)
	if err != nil {
		return err
	}
	kept := js.Log[:0]
	found := false
	for _, e := range js.Log {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrEntryNotFound
	}
	js.Log = kept
	s.saveAndReload(ctx, st, js)
	return nil
}
