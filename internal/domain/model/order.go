package model

import "time"

// Order is the collaborator entity refunds are issued against. The back
// office only needs its total and creation time, the latter anchoring the
// refund eligibility window.
type Order struct {
	ID        int64
	Total     float64
	CreatedAt time.Time
}
