package usecase

import "github.com/eshopcore/backoffice/internal/domain/model"

// transitions is the refund state machine: a pending refund may be resolved
// one way, resolved refunds stay resolved.
var transitions = map[model.RefundStatus]map[model.RefundStatus]bool{
	model.RefundStatusPending: {
		model.RefundStatusApproved:  true,
		model.RefundStatusRejected:  true,
		model.RefundStatusCancelled: true,
	},
}

// CanTransition reports whether a refund may move from one status to another.
func CanTransition(from, to model.RefundStatus) bool {
	return transitions[from][to]
}
