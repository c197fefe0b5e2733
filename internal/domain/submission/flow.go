package submission

import (
	"time"

	"github.com/google/uuid"

	apperr "github.com/honeycarbs/jobshop/internal/errors"
)

// State is the visible state of a form
type State string

const (
	StateIdle      State = "idle"
	StateSubmitted State = "submitted"
)

// Reset delays after a successful submission. The employer form clears
// right away; the others show a confirmation first.
const (
	ContactResetAfter  = 3 * time.Second
	EmployerResetAfter = 0
	ResumeResetAfter   = 5 * time.Second
)

var confirmations = map[Kind]string{
	KindContact:  "Message sent successfully! Thank you for contacting us. We'll get back to you within 24 hours.",
	KindEmployer: "Thank you for your submission! Our team will get in touch with you shortly.",
	KindResume:   "Resume Uploaded Successfully! Thank you for registering with JobShop India. Our recruitment team will review your profile and contact you with suitable opportunities.",
}

// ResetDelay reports how long a form of kind stays in the submitted state
func ResetDelay(kind Kind) time.Duration {
	switch kind {
	case KindContact:
		return ContactResetAfter
	case KindResume:
		return ResumeResetAfter
	default:
		return EmployerResetAfter
	}
}

// Receipt acknowledges an accepted submission
type Receipt struct {
	Reference   string        `json:"reference"`
	Form        Kind          `json:"form"`
	Message     string        `json:"message"`
	SubmittedAt time.Time     `json:"submittedAt"`
	ResetAfter  time.Duration `json:"-"`
	// ResetAfterMs mirrors ResetAfter for clients
	ResetAfterMs int64 `json:"resetAfterMs"`
}

// ResetAt is the instant the form returns to idle
func (r Receipt) ResetAt() time.Time {
	return r.SubmittedAt.Add(r.ResetAfter)
}

// Flow is the two-state lifecycle of one form view: idle until submitted,
// then submitted until its reset delay elapses or it is reset explicitly.
// Time is passed in so the transition has no timer behind it.
type Flow struct {
	kind       Kind
	resetAfter time.Duration

	submitted   bool
	submittedAt time.Time
}

func NewFlow(kind Kind) *Flow {
	return &Flow{kind: kind, resetAfter: ResetDelay(kind)}
}

func (f *Flow) Kind() Kind {
	return f.kind
}

// State returns the state observed at now
func (f *Flow) State(now time.Time) State {
	if !f.submitted {
		return StateIdle
	}
	if !now.Before(f.submittedAt.Add(f.resetAfter)) {
		f.Reset()
		return StateIdle
	}
	return StateSubmitted
}

// Submit moves an idle flow to submitted. A flow still showing its
// confirmation rejects a second submission.
func (f *Flow) Submit(now time.Time) (Receipt, error) {
	if f.State(now) == StateSubmitted {
		return Receipt{}, apperr.Conflict("form already submitted", nil)
	}

	f.submitted = true
	f.submittedAt = now

	return Receipt{
		Reference:   uuid.NewString(),
		Form:        f.kind,
		Message:     confirmations[f.kind],
		SubmittedAt: now,
		ResetAfter:  f.resetAfter,

		ResetAfterMs: f.resetAfter.Milliseconds(),
	}, nil
}

// Reset returns the flow to idle
func (f *Flow) Reset() {
	f.submitted = false
	f.submittedAt = time.Time{}
}
