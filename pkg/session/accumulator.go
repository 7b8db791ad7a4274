package session

import (
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
)

// accumulator is the ordered list of finalized sketch profiles. Insertion
// order is loft/sweep section order. It is owned by Session, which provides
// the locking; methods here assume the session mutex is held.
type accumulator struct {
	profiles []ports.Profile
}

func (a *accumulator) append(p ports.Profile) {
	a.profiles = append(a.profiles, p)
}

func (a *accumulator) len() int { return len(a.profiles) }

// drain returns the full list in insertion order and resets to empty in one
// step. A feature call sees either the complete list or nothing.
func (a *accumulator) drain() []ports.Profile {
	out := a.profiles
	a.profiles = nil
	return out
}

// snapshot returns a copy of the list without mutating it.
func (a *accumulator) snapshot() []ports.Profile {
	out := make([]ports.Profile, len(a.profiles))
	copy(out, a.profiles)
	return out
}

// selectByIndex narrows to the given positions (as accumulated, 0-based)
// without draining. Out-of-range positions fail with the same contract as
// topology resolution.
func (a *accumulator) selectByIndex(indices []int) ([]ports.Profile, error) {
	out := make([]ports.Profile, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(a.profiles) {
			return nil, &domain.IndexError{
				Kind:      domain.KindProfile,
				Requested: i,
				Observed:  len(a.profiles),
			}
		}
		out = append(out, a.profiles[i])
	}
	return out, nil
}
