package domain

// Activity is a club or class students can join. Activities are identified
// by their human-readable name, which is the registry map key.
type Activity struct {
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}
