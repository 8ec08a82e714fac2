package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"example.com/activities/internal/domain"
)

func TestEncodeChange(t *testing.T) {
	occurred := time.Date(2026, time.March, 9, 15, 30, 0, 0, time.UTC)
	change := domain.RosterChange{
		Kind:       domain.RosterChangeSignup,
		Activity:   "Chess Club",
		Email:      "test@mergington.edu",
		RosterSize: 3,
		OccurredAt: occurred,
	}

	msg, err := encodeChange(change)
	require.NoError(t, err)
	require.Equal(t, []byte("Chess Club"), msg.Key)
	require.Equal(t, occurred, msg.Time)

	var event RosterEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	require.NotEmpty(t, event.EventID)
	require.Equal(t, "roster.signup", event.EventType)
	require.Equal(t, "Chess Club", event.Activity)
	require.Equal(t, "test@mergington.edu", event.Email)
	require.Equal(t, 3, event.RosterSize)
	require.True(t, event.OccurredAt.Equal(occurred))
}

func TestEncodeChangeUniqueEventIDs(t *testing.T) {
	change := domain.RosterChange{Kind: domain.RosterChangeUnregister, Activity: "Art Club"}

	first, err := encodeChange(change)
	require.NoError(t, err)
	second, err := encodeChange(change)
	require.NoError(t, err)

	var a, b RosterEvent
	require.NoError(t, json.Unmarshal(first.Value, &a))
	require.NoError(t, json.Unmarshal(second.Value, &b))
	require.NotEqual(t, a.EventID, b.EventID)
}

func TestWriterForTopicReusesWriters(t *testing.T) {
	publisher := NewKafkaPublisher([]string{"localhost:9092"}, "roster_events", zap.NewNop())
	defer publisher.Close()

	first := publisher.writerForTopic("roster_events")
	second := publisher.writerForTopic("roster_events")
	require.Same(t, first, second)

	other := publisher.writerForTopic("other_topic")
	require.NotSame(t, first, other)
}

func TestCloseIsIdempotent(t *testing.T) {
	publisher := NewKafkaPublisher([]string{"localhost:9092"}, "roster_events", zap.NewNop())
	publisher.writerForTopic("roster_events")

	require.NoError(t, publisher.Close())
	require.NoError(t, publisher.Close())
}

func TestNopDiscardsChanges(t *testing.T) {
	// Must not panic or block; Nop is the default sink.
	Nop{}.RosterChanged(context.Background(), domain.RosterChange{Activity: "Chess Club"})
}
