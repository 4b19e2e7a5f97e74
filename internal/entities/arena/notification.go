package arena

import "time"

// NotificationKind tells a polling client what happened.
type NotificationKind string

// Notification kinds produced by matchmaking.
const (
	NotificationMatchFound     NotificationKind = "match_found"
	NotificationBattleResolved NotificationKind = "battle_resolved"
)

// Notification is one mailbox message. Delivered flips to true on the poll
// that returns it; delivered notifications are pruned.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	SessionID string           `json:"session_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	Delivered bool             `json:"delivered"`
}
