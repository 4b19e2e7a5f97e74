package errors

// MetaReason is the metadata key that names the domain failure behind an error.
const MetaReason = "reason"

// Domain reasons carried in Meta[MetaReason].
const (
	ReasonInvalidAllocation = "invalid_allocation"
	ReasonNoActiveSession   = "no_active_session"
	ReasonInsufficientGold  = "insufficient_gold"
	ReasonSlotMismatch      = "slot_mismatch"
	ReasonItemNotOwned      = "item_not_owned"
	ReasonLevelTooLow       = "level_too_low"
)

// InvalidAllocation reports stat points that are negative, unknown or exceed the pool.
func InvalidAllocation(message string) *Error {
	return InvalidArgument(message).WithMeta(MetaReason, ReasonInvalidAllocation)
}

// InvalidAllocationf is InvalidAllocation with a formatted message.
func InvalidAllocationf(format string, args ...interface{}) *Error {
	return InvalidArgumentf(format, args...).WithMeta(MetaReason, ReasonInvalidAllocation)
}

// NoActiveSession reports a combat session that does not exist or is not in the
// state the operation needs.
func NoActiveSession(sessionID string) *Error {
	return FailedPreconditionf("no active combat session %q", sessionID).
		WithMeta(MetaReason, ReasonNoActiveSession).
		WithMeta("session_id", sessionID)
}

// InsufficientGold reports a purchase or training the gladiator cannot pay for.
func InsufficientGold(have, need int) *Error {
	return FailedPreconditionf("not enough gold: have %d, need %d", have, need).
		WithMeta(MetaReason, ReasonInsufficientGold)
}

// SlotMismatch reports an item equipped into a slot it does not fit.
func SlotMismatch(itemID, slot string) *Error {
	return InvalidArgumentf("item %s does not fit slot %s", itemID, slot).
		WithMeta(MetaReason, ReasonSlotMismatch)
}

// ItemNotOwned reports equipping an item the gladiator never bought.
func ItemNotOwned(itemID string) *Error {
	return InvalidArgumentf("item %s is not in the inventory", itemID).
		WithMeta(MetaReason, ReasonItemNotOwned)
}

// LevelTooLow reports an item whose level requirement is not met.
func LevelTooLow(have, need int) *Error {
	return FailedPreconditionf("level %d required, gladiator is level %d", need, have).
		WithMeta(MetaReason, ReasonLevelTooLow)
}

// Reason returns the domain reason of err, or "" when none is attached.
func Reason(err error) string {
	reason, _ := GetMeta(err)[MetaReason].(string)
	return reason
}

// IsInvalidAllocation checks if an error is an InvalidAllocation error
func IsInvalidAllocation(err error) bool {
	return IsInvalidArgument(err) && Reason(err) == ReasonInvalidAllocation
}

// IsNoActiveSession checks if an error is a NoActiveSession error
func IsNoActiveSession(err error) bool {
	return IsFailedPrecondition(err) && Reason(err) == ReasonNoActiveSession
}
