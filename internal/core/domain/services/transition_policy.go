package services

// TransitionPolicy carries the configurable knobs of the booking lifecycle.
// Today there is exactly one: whether a move that has already started may
// still be cancelled. The default is to refuse.
type TransitionPolicy struct {
	allowCancelFromInProgress bool
}

// NewTransitionPolicy creates a transition policy.
func NewTransitionPolicy(allowCancelFromInProgress bool) TransitionPolicy {
	return TransitionPolicy{allowCancelFromInProgress: allowCancelFromInProgress}
}

// AllowCancelFromInProgress reports whether in_progress -> cancelled is
// permitted.
func (p TransitionPolicy) AllowCancelFromInProgress() bool {
	return p.allowCancelFromInProgress
}
