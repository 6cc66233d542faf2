// Package appstate implements the per-user navigation state machine: which
// view a user is on, which views their role can reach, and the explicit
// actions that move between views.
package appstate

import "github.com/codementor/codementor-api/internal/models"

// View is a named screen of the application
type View string

const (
	ViewAuth           View = "auth"
	ViewOnboarding     View = "onboarding"
	ViewDashboard      View = "dashboard"
	ViewFindMentor     View = "find-mentor"
	ViewMySessions     View = "my-sessions"
	ViewWarRoom        View = "war-room"
	ViewRepository     View = "repository"
	ViewGamification   View = "gamification"
	ViewRequests       View = "requests"
	ViewAvailability   View = "availability"
	ViewHistory        View = "history"
	ViewAdminDashboard View = "admin-dashboard"
	ViewReports        View = "reports"
	ViewSettings       View = "settings"
)

// NavItems returns the views a role can navigate to from the menu,
// in display order. The switch is exhaustive over roles.
func NavItems(role models.Role) []View {
	switch role {
	case models.RoleMentee:
		return []View{ViewDashboard, ViewFindMentor, ViewMySessions, ViewRepository, ViewGamification, ViewSettings}
	case models.RoleMentor:
		return []View{ViewDashboard, ViewRequests, ViewAvailability, ViewHistory, ViewSettings}
	case models.RoleAdmin:
		return []View{ViewAdminDashboard, ViewReports, ViewSettings}
	}
	return nil
}

// canNavigate reports whether a role may move to the view via the menu.
// The war room is excluded: it is entered only by joining a session.
func canNavigate(role models.Role, view View) bool {
	for _, v := range NavItems(role) {
		if v == view {
			return true
		}
	}
	return false
}

// homeView is the landing view after login or onboarding
func homeView(role models.Role) View {
	if role == models.RoleAdmin {
		return ViewAdminDashboard
	}
	return ViewDashboard
}
