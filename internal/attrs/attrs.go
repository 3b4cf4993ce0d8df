// Package attrs resolves channel aliases and locks channels on scene nodes.
package attrs

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gorig/internal/host"
)

// ErrInvalidAlias is returned for aliases not in the alias table.
var ErrInvalidAlias = errors.New("invalid attribute alias")

// Channels is the fixed order every resolution returns.
var Channels = []string{
	"translateX", "translateY", "translateZ",
	"rotateX", "rotateY", "rotateZ",
	"scaleX", "scaleY", "scaleZ",
	"visibility",
}

// aliases maps each channel to the aliases selecting it.
var aliases = map[string][]string{
	"translateX": {"all", "a", "translate", "t", "translateX", "tx", "x"},
	"translateY": {"all", "a", "translate", "t", "translateY", "ty", "y"},
	"translateZ": {"all", "a", "translate", "t", "translateZ", "tz", "z"},
	"rotateX":    {"all", "a", "rotate", "r", "rotateX", "rx", "x"},
	"rotateY":    {"all", "a", "rotate", "r", "rotateY", "ry", "y"},
	"rotateZ":    {"all", "a", "rotate", "r", "rotateZ", "rz", "z"},
	"scaleX":     {"all", "a", "scale", "s", "scaleX", "sx", "x"},
	"scaleY":     {"all", "a", "scale", "s", "scaleY", "sy", "y"},
	"scaleZ":     {"all", "a", "scale", "s", "scaleZ", "sz", "z"},
	"visibility": {"all", "a", "visibility", "v"},
}

var shortNames = map[string]string{
	"translateX": "tx", "translateY": "ty", "translateZ": "tz",
	"rotateX": "rx", "rotateY": "ry", "rotateZ": "rz",
	"scaleX": "sx", "scaleY": "sy", "scaleZ": "sz",
	"visibility": "v",
}

// valid holds every known alias.
var valid = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, list := range aliases {
		for _, a := range list {
			m[a] = struct{}{}
		}
	}
	return m
}()

// Remap resolves aliases into channels in the order of Channels.
func Remap(in []string) ([]string, error) {
	for _, a := range in {
		if _, ok := valid[a]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAlias, a)
		}
	}
	requested := make(map[string]struct{}, len(in))
	for _, a := range in {
		requested[a] = struct{}{}
	}

	var out []string
	for _, ch := range Channels {
		for _, a := range aliases[ch] {
			if _, ok := requested[a]; ok {
				out = append(out, ch)
				break
			}
		}
	}
	return out, nil
}

// Resolve returns the channels selected by lock minus those selected by
// notLock.
func Resolve(lock, notLock []string) ([]string, error) {
	locked, err := Remap(lock)
	if err != nil {
		return nil, fmt.Errorf("lock: %w", err)
	}
	keep, err := Remap(notLock)
	if err != nil {
		return nil, fmt.Errorf("not lock: %w", err)
	}
	skip := make(map[string]struct{}, len(keep))
	for _, ch := range keep {
		skip[ch] = struct{}{}
	}

	var out []string
	for _, ch := range locked {
		if _, ok := skip[ch]; !ok {
			out = append(out, ch)
		}
	}
	return out, nil
}

// ShortName returns the short form of a channel, e.g. tx for translateX.
func ShortName(channel string) (string, bool) {
	s, ok := shortNames[channel]
	return s, ok
}

// Locker is implemented by scenes whose channels can be locked and hidden.
type Locker interface {
	SetLocked(id host.NodeID, channel string, locked bool) error
	SetHidden(id host.NodeID, channel string, hidden bool) error
}

// LockAndHide locks the channels and hides them from the channel box.
func LockAndHide(l Locker, id host.NodeID, channels []string) error {
	for _, ch := range channels {
		if err := l.SetLocked(id, ch, true); err != nil {
			return fmt.Errorf("lock %s: %w", ch, err)
		}
		if err := l.SetHidden(id, ch, true); err != nil {
			return fmt.Errorf("hide %s: %w", ch, err)
		}
	}
	return nil
}
