package joblog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/domain/joblog"
)

func TestStatusChangeEntry(t *testing.T) {
	now := time.Now()

	e := joblog.StatusChangeEntry("Saved", "Applied", "Acme Corp", "Engineer", now)
	require.Equal(t, joblog.TypeStatusChange, e.Type)
	require.Equal(t, `Status changed from "Saved" to "Applied"`, e.Description)
	require.Equal(t, "Automated entry for Engineer at Acme Corp", e.Notes)
	require.Equal(t, now, e.Date)
}

func TestStatusChangeEntryForNewJob(t *testing.T) {
	e := joblog.StatusChangeEntry("", "Saved", "Acme Corp", "Engineer", time.Now())
	require.Equal(t, `Job Added - Status set to "Saved"`, e.Description)
}

func TestEntryInputValidate(t *testing.T) {
	valid := joblog.EntryInput{
		Date:        time.Now(),
		Type:        joblog.TypePhoneCall,
		Description: "Called about the role",
	}
	require.NoError(t, valid.Validate())

	missingType := valid
	missingType.Type = "voicemail"
	require.ErrorIs(t, missingType.Validate(), joblog.ErrInvalidEntry)

	blankDescription := valid
	blankDescription.Description = "   "
	require.ErrorIs(t, blankDescription.Validate(), joblog.ErrInvalidEntry)

	noDate := valid
	noDate.Date = time.Time{}
	require.ErrorIs(t, noDate.Validate(), joblog.ErrInvalidEntry)
}

func TestEntryInputValidateEmailContact(t *testing.T) {
	in := joblog.EntryInput{
		Date:        time.Now(),
		Type:        joblog.TypeEmail,
		Description: "Sent a follow-up",
		ContactMode: joblog.ContactOther,
	}
	// Other-contact picker selected but no contact named.
	require.ErrorIs(t, in.Validate(), joblog.ErrInvalidEntry)

	in.OtherContact = "Pat from HR"
	require.NoError(t, in.Validate())

	// Recruiter picker never requires the free-text contact.
	in.OtherContact = ""
	in.ContactMode = joblog.ContactRecruiter
	require.NoError(t, in.Validate())
}

func TestEntryTypeLabel(t *testing.T) {
	require.Equal(t, "PHONE CALL", joblog.TypePhoneCall.Label())
	require.Equal(t, "STATUS CHANGE", joblog.TypeStatusChange.Label())
	require.Equal(t, "OTHER", joblog.TypeOther.Label())
}
