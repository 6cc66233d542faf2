package appstate

import (
	"errors"
	"strconv"
	"sync"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/validation"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/codementor/codementor-api/pkg/metrics"
	"go.uber.org/zap"
)

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrViewNotReachable  = errors.New("view not reachable for role")
	ErrNotInWarRoom      = errors.New("no active war room session")
	ErrCloseNotInitiated = errors.New("session close not initiated")
	ErrRatingRequired    = errors.New("a rating is required to finish the session")
	ErrOnboardingOnly    = errors.New("onboarding is only available during onboarding")
)

// Machine holds one user's navigation state. All transitions happen under
// the mutex: a user's actions are serialized even when requests race.
type Machine struct {
	mu sync.Mutex

	view            View
	user            *models.User
	activeSessionID string
	closing         bool
}

// NewMachine creates a machine in the initial unauthenticated state
func NewMachine() *Machine {
	return &Machine{view: ViewAuth}
}

// Snapshot is a consistent read of the machine state
type Snapshot struct {
	View            View         `json:"view"`
	User            *models.User `json:"user,omitempty"`
	ActiveSessionID string       `json:"activeSessionId,omitempty"`
	ClosePending    bool         `json:"closePending"`
	NavItems        []View       `json:"navItems,omitempty"`
}

// State returns a snapshot of the current machine state
func (m *Machine) State() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		View:            m.view,
		User:            m.user,
		ActiveSessionID: m.activeSessionID,
		ClosePending:    m.closing,
	}
	if m.user != nil {
		snap.NavItems = NavItems(m.user.Role)
	}
	return snap
}

// Login routes the user to their role's landing view. A mentee whose
// stored profile has no name goes through onboarding first.
func (m *Machine) Login(user *models.User) (View, error) {
	if user == nil {
		return "", ErrNotAuthenticated
	}
	if err := user.Validate(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = user
	m.activeSessionID = ""
	m.closing = false

	target := homeView(user.Role)
	if user.NeedsOnboarding() {
		target = ViewOnboarding
	}
	m.transition(target)

	metrics.LoginTotal.WithLabelValues(string(user.Role)).Inc()
	return m.view, nil
}

// CompleteOnboarding merges the submitted profile into the current user
// and lands on the dashboard
func (m *Machine) CompleteOnboarding(req models.OnboardingRequest) (*models.User, error) {
	if err := validation.ValidateName(req.Name); err != nil {
		return nil, err
	}
	if err := validation.WithinLimit("interests", req.Interests, validation.MaxInterestsLength); err != nil {
		return nil, err
	}
	if len(req.Languages) == 0 {
		return nil, validation.Error("select at least one language")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return nil, ErrNotAuthenticated
	}
	if m.view != ViewOnboarding {
		return nil, ErrOnboardingOnly
	}

	m.user.Name = req.Name
	m.user.Languages = req.Languages
	m.user.Interests = req.Interests
	if req.Level != "" && req.Level.IsValid() {
		m.user.Level = req.Level
	}

	m.transition(homeView(m.user.Role))
	return m.user, nil
}

// Navigate moves to a menu view. Only views reachable by the user's role
// are allowed; the war room is never a navigation target.
func (m *Machine) Navigate(target View) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return "", ErrNotAuthenticated
	}
	if !canNavigate(m.user.Role, target) {
		return "", ErrViewNotReachable
	}

	// Leaving the war room goes through the feedback gate, not the menu
	if m.view == ViewWarRoom {
		return "", ErrCloseNotInitiated
	}

	m.transition(target)
	return m.view, nil
}

// JoinSession enters the war room for the given session
func (m *Machine) JoinSession(sessionID string) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return "", ErrNotAuthenticated
	}
	if m.user.Role != models.RoleMentee {
		return "", ErrViewNotReachable
	}

	m.activeSessionID = sessionID
	m.closing = false
	m.transition(ViewWarRoom)
	return m.view, nil
}

// BeginClose opens the feedback gate. The user stays in the war room
// until feedback is submitted; there is no skip path.
func (m *Machine) BeginClose() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return ErrNotAuthenticated
	}
	if m.view != ViewWarRoom {
		return ErrNotInWarRoom
	}

	m.closing = true
	return nil
}

// SubmitFeedback validates the rating and comment, closes the war room
// and returns to the dashboard
func (m *Machine) SubmitFeedback(feedback models.SessionFeedback) (View, error) {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return "", ErrRatingRequired
	}
	if err := validation.WithinLimit("comment", feedback.Comment, validation.MaxFeedbackCommentLength); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return "", ErrNotAuthenticated
	}
	if m.view != ViewWarRoom {
		return "", ErrNotInWarRoom
	}
	if !m.closing {
		return "", ErrCloseNotInitiated
	}

	metrics.FeedbackSubmissions.WithLabelValues(strconv.Itoa(feedback.Rating)).Inc()

	m.activeSessionID = ""
	m.closing = false
	m.transition(ViewDashboard)
	return m.view, nil
}

// Logout discards all in-memory state and returns to the auth view
func (m *Machine) Logout() View {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil
	m.activeSessionID = ""
	m.closing = false
	m.transition(ViewAuth)
	return m.view
}

// ActiveSession returns the joined session id, if any
func (m *Machine) ActiveSession() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeSessionID, m.activeSessionID != ""
}

// User returns the logged-in user, if any
func (m *Machine) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

func (m *Machine) transition(target View) {
	from := m.view
	m.view = target
	metrics.ViewTransitions.WithLabelValues(string(from), string(target)).Inc()
	logger.Debug("View transition",
		zap.String("from", string(from)),
		zap.String("to", string(target)))
}
