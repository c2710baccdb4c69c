package plan

import (
	"strconv"
	"sync"
)

// Store holds the plan for one agent session. Ids are assigned from a
// monotonic counter and never reused, even after deletion. The host
// issues one tool call at a time, but the TUI refresh loop reads from
// the bubbletea goroutine, so reads and writes are guarded.
type Store struct {
	mu     sync.RWMutex
	steps  []Step
	nextID int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Initialize replaces the whole plan with fresh pending steps numbered
// from 1 in the given order. An empty input yields an empty plan.
func (s *Store) Initialize(entries []StepInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.steps = make([]Step, len(entries))
	for i, e := range entries {
		s.steps[i] = Step{
			ID:          strconv.Itoa(i + 1),
			Title:       e.Title,
			Description: e.Description,
			Status:      StatusPending,
		}
	}
	s.nextID = len(entries) + 1
}

// Add appends a pending step and returns its assigned id.
func (s *Store) Add(title, description string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextID)
	s.nextID++
	s.steps = append(s.steps, Step{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      StatusPending,
	})
	return id
}

// Delete removes the step with the given id. Surviving steps keep
// their ids and the counter is untouched. Reports whether a step was
// removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.steps {
		if st.ID == id {
			s.steps = append(s.steps[:i], s.steps[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateStatus overwrites the status of the step with the given id in
// place. Reports whether the step was found.
func (s *Store) UpdateStatus(id string, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.steps {
		if s.steps[i].ID == id {
			s.steps[i].Status = status
			return true
		}
	}
	return false
}

// Steps returns a snapshot in insertion order. Callers may mutate the
// returned slice freely.
func (s *Store) Steps() []Step {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Clear empties the plan and resets the id counter to 1.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.steps = nil
	s.nextID = 1
}
