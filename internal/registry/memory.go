// Package registry provides the in-memory activity store.
package registry

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
)

// Memory stores activities in memory, seeded at construction. net/http
// serves each request on its own goroutine, so all access is guarded.
type Memory struct {
	mu              sync.RWMutex
	activities      map[string]domain.Activity
	enforceCapacity bool
}

// Option configures a Memory store.
type Option func(*Memory)

// WithCapacityEnforcement makes Signup reject activities at max_participants.
func WithCapacityEnforcement() Option {
	return func(m *Memory) {
		m.enforceCapacity = true
	}
}

// NewMemory builds a store seeded with the school's activity catalog.
func NewMemory(opts ...Option) *Memory {
	m := &Memory{activities: make(map[string]domain.Activity)}
	for _, opt := range opts {
		opt(m)
	}
	m.seed()
	return m
}

func (m *Memory) seed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, activity := range seedActivities() {
		m.activities[name] = activity
	}
}

// Snapshot implements domain.Rosters. Participant slices are copied so the
// caller cannot mutate the registry through the returned map.
func (m *Memory) Snapshot(ctx context.Context) (map[string]domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]domain.Activity, len(m.activities))
	for name, activity := range m.activities {
		participants := make([]string, len(activity.Participants))
		copy(participants, activity.Participants)
		activity.Participants = participants
		out[name] = activity
	}
	return out, nil
}

// Signup appends email to the activity's roster, preserving signup order.
func (m *Memory) Signup(ctx context.Context, activity, email string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.activities[activity]
	if !ok {
		return 0, domain.ErrActivityNotFound
	}
	for _, existing := range record.Participants {
		if existing == email {
			return 0, domain.ErrAlreadySignedUp
		}
	}
	if m.enforceCapacity && len(record.Participants) >= record.MaxParticipants {
		return 0, domain.ErrActivityFull
	}

	record.Participants = append(record.Participants, email)
	m.activities[activity] = record
	return len(record.Participants), nil
}

// Unregister removes email from the activity's roster, keeping the order of
// the remaining participants.
func (m *Memory) Unregister(ctx context.Context, activity, email string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.activities[activity]
	if !ok {
		return 0, domain.ErrActivityNotFound
	}

	idx := -1
	for i, existing := range record.Participants {
		if existing == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, domain.ErrNotRegistered
	}

	// Full slice expression keeps snapshots taken earlier from aliasing the
	// mutated backing array.
	record.Participants = append(record.Participants[:idx:idx], record.Participants[idx+1:]...)
	m.activities[activity] = record
	return len(record.Participants), nil
}
