package joblog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidEntry indicates a manual entry is missing required fields. The
// caller treats it as a no-op: nothing is mutated and nothing is surfaced
// beyond the rejected action.
var ErrInvalidEntry = errors.New("invalid log entry input")

// StatusChangeEntry builds the automated audit entry for a status change.
// An empty oldLabel marks a newly added opportunity. Entries are never
// deduplicated against prior ones.
func StatusChangeEntry(oldLabel, newLabel, company, position string, now time.Time) Entry {
	description := fmt.Sprintf("Status changed from %q to %q", oldLabel, newLabel)
	if oldLabel == "" {
		description = fmt.Sprintf("Job Added - Status set to %q", newLabel)
	}
	return Entry{
		Date:        now,
		Type:        TypeStatusChange,
		Description: description,
		Notes:       fmt.Sprintf("Automated entry for %s at %s", position, company),
	}
}

// ContactMode says which contact picker the caller used for an email entry.
type ContactMode string

const (
	ContactRecruiter ContactMode = "recruiter"
	ContactOther     ContactMode = "other"
	ContactNone      ContactMode = ""
)

// EntryInput carries the user-entered fields for a manual entry create or
// update.
type EntryInput struct {
	Date          time.Time
	Type          EntryType
	Description   string
	Notes         string
	OpportunityID string
	RecruiterID   string
	OtherContact  string
	ContactMode   ContactMode
}

// Validate enforces the required fields for a manual create or update:
// type, description, and date are mandatory, and an email entry using the
// other-contact picker needs a non-empty contact.
func (in EntryInput) Validate() error {
	if !in.Type.Valid() {
		return ErrInvalidEntry
	}
	if strings.TrimSpace(in.Description) == "" {
		return ErrInvalidEntry
	}
	if in.Date.IsZero() {
		return ErrInvalidEntry
	}
	if in.Type == TypeEmail && in.ContactMode == ContactOther && strings.TrimSpace(in.OtherContact) == "" {
		return ErrInvalidEntry
	}
	return nil
}

// Entry materializes the input as a log entry. The caller assigns the id.
func (in EntryInput) Entry() Entry {
	return Entry{
		Date:          in.Date,
		Type:          in.Type,
		Description:   in.Description,
		Notes:         in.Notes,
		OpportunityID: in.OpportunityID,
		RecruiterID:   in.RecruiterID,
		OtherContact:  in.OtherContact,
	}
}
