// Package domain defines the application lifecycle for resort job applications.
//
// Pipeline:
//
//	pending ──► interview_completed ──► accepted
//	                               └──► rejected
//
// accepted and rejected are terminal. Legacy statuses found on older records
// (reviewing, interview_scheduled, offer_sent, withdrawn) are valid current
// states but are never transitioned into or out of.
package domain

import "fmt"

// Status is the state of an application.
type Status string

const (
	StatusPending            Status = "pending"
	StatusInterviewCompleted Status = "interview_completed"
	StatusAccepted           Status = "accepted"
	StatusRejected           Status = "rejected"

	// Display-only statuses kept for older records.
	StatusReviewing          Status = "reviewing"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusOfferSent          Status = "offer_sent"
	StatusWithdrawn          Status = "withdrawn"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusPending:            {StatusInterviewCompleted},
	StatusInterviewCompleted: {StatusAccepted, StatusRejected},
	// accepted, rejected and legacy statuses have no outgoing transitions
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusInterviewCompleted, StatusAccepted, StatusRejected,
		StatusReviewing, StatusInterviewScheduled, StatusOfferSent, StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTerminal reports whether a decision has been made.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// IsTransitionAllowed returns true when moving from → to is permitted by the
// state machine.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
