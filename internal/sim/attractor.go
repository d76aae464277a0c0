package sim

import (
	"fmt"

	"github.com/san-kum/attractors/internal/dynamo"
	"github.com/san-kum/attractors/internal/integrators"
)

// Attractor owns one vector field and an arena of trajectories evolved in
// lockstep. Eviction is two-phase: Evict marks a trajectory during a pass,
// Compact drops every marked trajectory from the active set at pass end.
type Attractor struct {
	field   dynamo.Field
	stepper integrators.Stepper
	arena   []*Trajectory
	evicted []bool
	active  []int
	marked  int
}

func New(field dynamo.Field, stepper integrators.Stepper, inits []dynamo.Point3) (*Attractor, error) {
	if len(inits) == 0 {
		return nil, fmt.Errorf("%s: %w", field.Name(), dynamo.ErrNoInitialPoints)
	}
	if stepper == nil {
		stepper = integrators.NewEuler()
	}

	a := &Attractor{
		field:   field,
		stepper: stepper,
		arena:   make([]*Trajectory, len(inits)),
		evicted: make([]bool, len(inits)),
		active:  make([]int, len(inits)),
	}
	for i, p := range inits {
		a.arena[i] = &Trajectory{ID: i, Points: []dynamo.Point3{p}}
		a.active[i] = i
	}
	return a, nil
}

func (a *Attractor) Field() dynamo.Field { return a.field }

// Len returns the number of active trajectories.
func (a *Attractor) Len() int { return len(a.active) }

// Total returns the number of trajectories the instance was built with.
func (a *Attractor) Total() int { return len(a.arena) }

// Active returns the active trajectories in ID order. The slice is fresh;
// the trajectories are shared.
func (a *Attractor) Active() []*Trajectory {
	out := make([]*Trajectory, len(a.active))
	for i, id := range a.active {
		out[i] = a.arena[id]
	}
	return out
}

// Trajectory returns the trajectory with the given ID, evicted or not.
func (a *Attractor) Trajectory(id int) (*Trajectory, bool) {
	if id < 0 || id >= len(a.arena) {
		return nil, false
	}
	return a.arena[id], true
}

// Evicted reports whether id has been marked for removal.
func (a *Attractor) Evicted(id int) bool {
	return id >= 0 && id < len(a.evicted) && a.evicted[id]
}

// Evict marks a trajectory for removal. It returns false without effect
// when the trajectory is unknown or already marked.
func (a *Attractor) Evict(id int) bool {
	if id < 0 || id >= len(a.evicted) || a.evicted[id] {
		return false
	}
	a.evicted[id] = true
	a.marked++
	return true
}

// Compact removes marked trajectories from the active set and returns how
// many were removed.
func (a *Attractor) Compact() int {
	if a.marked == 0 {
		return 0
	}
	kept := a.active[:0]
	removed := 0
	for _, id := range a.active {
		if a.evicted[id] {
			removed++
			continue
		}
		kept = append(kept, id)
	}
	a.active = kept
	a.marked = 0
	return removed
}

// Step appends exactly one Euler (or configured stepper) point to every
// active trajectory. Overflow is not checked here.
func (a *Attractor) Step() {
	for _, id := range a.active {
		a.advance(a.arena[id])
	}
}

func (a *Attractor) advance(t *Trajectory) {
	t.append(a.stepper.Step(a.field, t.Last()))
}
