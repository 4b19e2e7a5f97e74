package matchmaking

import "github.com/KirkDiggler/arena-api/internal/entities/arena"

// Status reports where a player stands after joining
type Status string

// Join statuses.
const (
	StatusQueued  Status = "queued"
	StatusMatched Status = "matched"
)

// JoinQueueInput defines the request for joining the random battle queue
type JoinQueueInput struct {
	PlayerID string
}

// JoinQueueOutput defines the response for joining the random battle queue
type JoinQueueOutput struct {
	Status Status
	// SessionID is set when the join paired the player
	SessionID string
	Message   string
}

// LeaveQueueInput defines the request for leaving the queue
type LeaveQueueInput struct {
	PlayerID string
}

// LeaveQueueOutput defines the response for leaving the queue
type LeaveQueueOutput struct {
	Removed bool
}

// PollNotificationsInput defines the request for draining a mailbox
type PollNotificationsInput struct {
	PlayerID string
}

// PollNotificationsOutput defines the response for draining a mailbox
type PollNotificationsOutput struct {
	Notifications []*arena.Notification
	Queued        bool
}
