// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"example.com/activities/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the named activity is not in the registry.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the email is already on the roster.
	ErrAlreadySignedUp = errors.New("student already signed up for this activity")
	// ErrNotRegistered is returned when the email is not on the roster.
	ErrNotRegistered = errors.New("student not registered for this activity")
	// ErrActivityFull is returned when capacity enforcement is enabled and the roster is full.
	ErrActivityFull = errors.New("activity is full")
)

// Rosters captures roster storage operations. Implementations keep each
// mutation atomic with its validation checks and return the roster size
// after the mutation.
type Rosters interface {
	Snapshot(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activity, email string) (int, error)
	Unregister(ctx context.Context, activity, email string) (int, error)
}

// RosterChangeKind names the mutation carried by a RosterChange.
type RosterChangeKind string

const (
	RosterChangeSignup     RosterChangeKind = "roster.signup"
	RosterChangeUnregister RosterChangeKind = "roster.unregister"
)

// RosterChange describes a committed roster mutation.
type RosterChange struct {
	Kind       RosterChangeKind
	Activity   string
	Email      string
	RosterSize int
	OccurredAt time.Time
}

// EventSink receives committed roster changes. Delivery is best effort;
// implementations handle their own failures and must not block the request.
type EventSink interface {
	RosterChanged(ctx context.Context, change RosterChange)
}

// Service orchestrates signup workflows over the roster store.
type Service struct {
	rosters Rosters
	sink    EventSink
}

// NewService constructs a Service.
func NewService(rosters Rosters, sink EventSink) *Service {
	return &Service{rosters: rosters, sink: sink}
}

// ListActivities returns a read-only view of every activity.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.rosters.Snapshot(ctx)
}

// Signup adds email to the activity's roster and returns the confirmation message.
func (s *Service) Signup(ctx context.Context, activity, email string) (string, error) {
	size, err := s.rosters.Signup(ctx, activity, email)
	if err != nil {
		observability.RecordRejection("signup", rejectionReason(err))
		return "", err
	}

	observability.RecordSignup(activity, size)
	s.sink.RosterChanged(ctx, RosterChange{
		Kind:       RosterChangeSignup,
		Activity:   activity,
		Email:      email,
		RosterSize: size,
		OccurredAt: time.Now().UTC(),
	})

	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the activity's roster and returns the confirmation message.
func (s *Service) Unregister(ctx context.Context, activity, email string) (string, error) {
	size, err := s.rosters.Unregister(ctx, activity, email)
	if err != nil {
		observability.RecordRejection("unregister", rejectionReason(err))
		return "", err
	}

	observability.RecordUnregister(activity, size)
	s.sink.RosterChanged(ctx, RosterChange{
		Kind:       RosterChangeUnregister,
		Activity:   activity,
		Email:      email,
		RosterSize: size,
		OccurredAt: time.Now().UTC(),
	})

	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadySignedUp):
		return "duplicate"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, ErrActivityFull):
		return "full"
	default:
		return "error"
	}
}
