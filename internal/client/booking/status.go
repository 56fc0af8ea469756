// Package booking defines the client-side booking workflow: the status
// state machine, who may trigger each transition, creation validation,
// snapshot filtering, and dashboard aggregation.
//
// The backend is authoritative for every transition; this package exists so
// the client only ever offers legal actions and pre-checks input before a
// request is issued.
package booking

// Status is a booking's lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists all states in workflow order.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Actor identifies who is attempting a transition.
type Actor int

const (
	// ActorOwner is the user who created the booking.
	ActorOwner Actor = iota
	// ActorAdmin is an administrator acting on any booking.
	ActorAdmin
)

// CanTransition reports whether actor may move a booking from one status to
// another. Creation enters the workflow at StatusPending and is not modeled
// here.
//
//	pending   -> confirmed  (admin)
//	pending   -> cancelled  (admin or owner)
//	confirmed -> completed  (admin)
func CanTransition(from, to Status, actor Actor) bool {
	switch {
	case from == StatusPending && to == StatusConfirmed:
		return actor == ActorAdmin
	case from == StatusPending && to == StatusCancelled:
		return true
	case from == StatusConfirmed && to == StatusCompleted:
		return actor == ActorAdmin
	}
	return false
}

// NextStatuses returns the transitions the UI may offer for a booking in the
// given status to the given actor. Terminal statuses yield nothing.
func NextStatuses(from Status, actor Actor) []Status {
	var out []Status
	for _, to := range Statuses {
		if CanTransition(from, to, actor) {
			out = append(out, to)
		}
	}
	return out
}
