package models

// RequestStatus represents the review state of a session request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// IsValid checks if the status is a known value
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo checks if a transition to the target status is allowed.
// Pending requests move to accepted or rejected; decided requests are final.
// Re-asserting the current status is not a transition.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	if s != RequestStatusPending {
		return false
	}
	return target == RequestStatusAccepted || target == RequestStatusRejected
}

// IsTerminal reports whether the status admits no further transitions
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// SessionRequest is a mentee's ask for a mentoring session, reviewed
// exactly once by a mentor.
type SessionRequest struct {
	ID              string        `json:"id"`
	RequesterName   string        `json:"requesterName"`
	RequesterAvatar string        `json:"requesterAvatar,omitempty"`
	Topic           string        `json:"topic"`
	ProposedDate    string        `json:"proposedDate"`
	Message         string        `json:"message,omitempty"`
	Status          RequestStatus `json:"status"`
}

// UpdateRequestStatusRequest is the payload for a mentor's review decision
type UpdateRequestStatusRequest struct {
	Status RequestStatus `json:"status" binding:"required"`
}
