package joblog

import (
	"strings"
	"time"
)

// EntryType categorizes a log entry.
type EntryType string

const (
	TypePhoneCall    EntryType = "phone_call"
	TypeEmail        EntryType = "email"
	TypeStatusChange EntryType = "status_change"
	TypeInterview    EntryType = "interview"
	TypeApplication  EntryType = "application"
	TypeFollowUp     EntryType = "follow_up"
	TypeOther        EntryType = "other"
)

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	switch t {
	case TypePhoneCall, TypeEmail, TypeStatusChange, TypeInterview,
		TypeApplication, TypeFollowUp, TypeOther:
		return true
	}
	return false
}

// Label returns the display form of the type ("phone_call" -> "PHONE CALL").
func (t EntryType) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(t), "_", " "))
}

// Entry is one activity log record. The collection is append-only except
// for explicit edit and delete; automated status_change entries live in the
// same collection as manual ones and are indistinguishable in storage.
// OpportunityID and RecruiterID are weak references — the target may have
// been deleted since the entry was written.
type Entry struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Type          EntryType `json:"type"`
	Description   string    `json:"description"`
	Notes         string    `json:"notes,omitempty"`
	OpportunityID string    `json:"opportunityId,omitempty"`
	RecruiterID   string    `json:"recruiterId,omitempty"`
	OtherContact  string    `json:"otherContact,omitempty"`
}
