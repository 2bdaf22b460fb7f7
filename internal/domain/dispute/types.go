package dispute

type Status string

const (
	StatusOpen     Status = "open"
	StatusInReview Status = "in_review"
	StatusResolved Status = "resolved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInReview, StatusResolved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the dispute can still be advanced.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// CanTransitionTo encodes the triage flow: open -> in_review or rejected,
// in_review -> resolved or rejected.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusOpen:
		return next == StatusInReview || next == StatusRejected
	case StatusInReview:
		return next == StatusResolved || next == StatusRejected
	default:
		return false
	}
}
