package search

import (
	"time"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/opportunity"
)

// Opportunities returns the filtered, sorted page of the current search's
// opportunities together with the summary counts. Counts always come from
// the full collection, not the filtered set.
func (s *Service) Opportunities(st *State, f opportunity.Filter, mode opportunity.SortMode, page, perPage int) (opportunity.Page, opportunity.Counts, error) {
	js, err := s.current(st)
	if err != nil {
		return opportunity.Page{}, opportunity.Counts{}, err
	}
	filtered := opportunity.Select(js.Opportunities, f)
	opportunity.Order(filtered, mode, time.Now())
	return opportunity.Paginate(filtered, page, perPage), opportunity.Summarize(js.Opportunities), nil
}

// FilteredOpportunities returns the full filtered, sorted set, for the
// export serializers, which operate on the current view rather than the
// raw collection.
func (s *Service) FilteredOpportunities(st *State, f opportunity.Filter, mode opportunity.SortMode) ([]opportunity.Opportunity, error) {
	js, err := s.current(st)
	if err != nil {
		return nil, err
	}
	filtered := opportunity.Select(js.Opportunities, f)
	opportunity.Order(filtered, mode, time.Now())
	return filtered, nil
}

// LogEntries returns the filtered page of the current search's log,
// newest first.
func (s *Service) LogEntries(st *State, f joblog.Filter, page, perPage int) (joblog.Page, error) {
	js, err := s.current(st)
	if err != nil {
		return joblog.Page{}, err
	}
	return joblog.Paginate(joblog.Select(js.Log, f), page, perPage), nil
}

// FilteredLog returns the full filtered log, newest first, for export.
func (s *Service) FilteredLog(st *State, f joblog.Filter) ([]joblog.Entry, error) {
	js, err := s.current(st)
	if err != nil {
		return nil, err
	}
	return joblog.Select(js.Log, f), nil
}
