package domain

// Status is the lifecycle state of a job application.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusReview    Status = "Review"
	StatusInterview Status = "Interview"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
)

// Statuses lists every defined application state.
var Statuses = []Status{StatusPending, StatusReview, StatusInterview, StatusAccepted, StatusRejected}

// transitions maps each state to the states a company may move it to.
// Rejected is additionally reachable from any non-terminal state.
var transitions = map[Status][]Status{
	StatusPending:   {StatusReview, StatusRejected},
	StatusReview:    {StatusInterview, StatusRejected},
	StatusInterview: {StatusAccepted, StatusRejected},
}

// ValidStatus reports whether s is one of the five defined states.
func ValidStatus(s Status) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransition reports whether a company may move an application from one
// state to another. Creation (-> Pending) is not a transition and is handled
// by the apply path.
func CanTransition(from, to Status) bool {
	for _, v := range transitions[from] {
		if v == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the states reachable from s, in table order.
func NextStatuses(s Status) []Status {
	return transitions[s]
}
