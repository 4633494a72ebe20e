package types

import "time"

type ScheduleToken string

// Scheduler is the cancellable delayed-execution primitive behind hide
// transitions. Cancel on an unknown or already-fired token is a no-op.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) ScheduleToken
	Cancel(token ScheduleToken)
}
