package search

import "errors"

var (
	// ErrSearchNotFound indicates the job search doesn't exist in the state.
	ErrSearchNotFound = errors.New("job search not found")
	// ErrNoCurrentSearch indicates no search is active.
	ErrNoCurrentSearch = errors.New("no active job search")
	// ErrOpportunityNotFound indicates the opportunity doesn't exist.
	ErrOpportunityNotFound = errors.New("opportunity not found")
	// ErrInterviewNotFound indicates the interview doesn't exist.
	ErrInterviewNotFound = errors.New("interview not found")
	// ErrContactNotFound indicates the contact doesn't exist.
	ErrContactNotFound = errors.New("contact not found")
	// ErrRecruiterNotFound indicates the recruiter doesn't exist.
	ErrRecruiterNotFound = errors.New("recruiter not found")
	// ErrResourceNotFound indicates the online resource doesn't exist.
	ErrResourceNotFound = errors.New("online resource not found")
	// ErrEntryNotFound indicates the log entry doesn't exist.
	ErrEntryNotFound = errors.New("log entry not found")
	// ErrInvalidInput indicates a required field is missing; the action is
	// blocked without mutating anything.
	ErrInvalidInput = errors.New("invalid input")
)
