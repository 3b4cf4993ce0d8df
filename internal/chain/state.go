package chain

import "fmt"

// State is a build state. Builds move forward through the states in
// declaration order and end in Done or Failed.
type State int

const (
	Idle State = iota
	Validating
	Creating
	Orienting
	Linking
	Finalizing
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Creating:
		return "creating"
	case Orienting:
		return "orienting"
	case Linking:
		return "linking"
	case Finalizing:
		return "finalizing"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Mutating reports whether the host scene may have been changed once a
// build reached s.
func (s State) Mutating() bool {
	return s >= Creating && s <= Finalizing
}

// Mode is the way joint rotations are computed.
type Mode int

const (
	Arbitrary Mode = iota
	Linear
	Planar
)

func (m Mode) String() string {
	switch m {
	case Arbitrary:
		return "arbitrary"
	case Linear:
		return "linear"
	case Planar:
		return "planar"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode reads a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{Arbitrary, Linear, Planar} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown chain mode %q (must be arbitrary, linear or planar)", s)
}
