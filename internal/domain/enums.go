package domain

// SessionStatus is the persisted lifecycle state of a single session.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusOnBreak   SessionStatus = "on_break"
	StatusCompleted SessionStatus = "completed"
)

// PunchState is the derived per-account punch state. It is recomputed from
// the latest non-completed session on every operation, never cached.
type PunchState string

const (
	StateIdle    PunchState = "idle"
	StateWorking PunchState = "working"
	StateOnBreak PunchState = "on_break"
)
