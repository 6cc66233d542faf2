package warroom

import (
	"errors"
	"sync"
)

// ErrNoRoom is returned when a subject has no open war room
var ErrNoRoom = errors.New("no open war room")

// Manager tracks one room per app session subject
type Manager struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

// NewManager creates an empty manager
func NewManager() *Manager {
	return &Manager{rooms: map[string]*Room{}}
}

// Open creates a room for the subject, closing any previous one first
func (m *Manager) Open(subject, sessionID, userName, starterCode string) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.rooms[subject]; ok {
		prev.Close()
	}

	room := NewRoom(sessionID, userName, starterCode)
	m.rooms[subject] = room
	return room
}

// Get returns the subject's open room
func (m *Manager) Get(subject string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[subject]
	if !ok || !room.Active() {
		return nil, ErrNoRoom
	}
	return room, nil
}

// Close shuts the subject's room. Closing a missing room is a no-op.
func (m *Manager) Close(subject string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if room, ok := m.rooms[subject]; ok {
		room.Close()
		delete(m.rooms, subject)
	}
}

// Shutdown closes every open room
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for subject, room := range m.rooms {
		room.Close()
		delete(m.rooms, subject)
	}
}
