package entity

// Round is a selection cycle. It carries no state of its own; whether a
// round is exhausted is derived from its selections and the participant set.
type Round struct {
	Base
}
