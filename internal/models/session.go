package models

// SessionStatus represents the lifecycle state of a mentoring session
type SessionStatus string

const (
	SessionStatusUpcoming  SessionStatus = "upcoming"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// IsValid checks if the status is a known value
func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusUpcoming, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if a transition to the target status is allowed.
// Only upcoming sessions can move, and only into a terminal state.
func (s SessionStatus) CanTransitionTo(target SessionStatus) bool {
	if s != SessionStatusUpcoming {
		return false
	}
	return target == SessionStatusCompleted || target == SessionStatusCancelled
}

// IsTerminal reports whether the status admits no further transitions
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}

// Session is a scheduled or past mentoring session. Sessions are never
// deleted, only filtered by status.
type Session struct {
	ID         string        `json:"id"`
	MentorID   string        `json:"mentorId,omitempty"`
	MentorName string        `json:"mentorName"`
	Topic      string        `json:"topic"`
	Date       string        `json:"date"`
	Status     SessionStatus `json:"status"`
	Rating     int           `json:"rating,omitempty"`   // completed sessions only
	Earnings   int           `json:"earnings,omitempty"` // mentor side, completed only
}

// SessionFeedback is the mentee's rating of a session being closed
type SessionFeedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// FeedbackRequest is the payload for submitting session feedback
type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
