package appstate

import "sync"

// Registry keys machines by app session subject. Each user gets exactly
// one machine for the lifetime of the process.
type Registry struct {
	mu       sync.Mutex
	machines map[string]*Machine
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{machines: map[string]*Machine{}}
}

// Get returns the machine for the subject, creating it on first use
func (r *Registry) Get(subject string) *Machine {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.machines[subject]
	if !ok {
		m = NewMachine()
		r.machines[subject] = m
	}
	return m
}

// Drop removes a subject's machine, typically on logout
func (r *Registry) Drop(subject string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.machines, subject)
}
