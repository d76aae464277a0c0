package sim

import "github.com/san-kum/attractors/internal/dynamo"

// Trajectory is the append-only history of one initial condition. ID is
// stable for the lifetime of the owning Attractor.
type Trajectory struct {
	ID     int
	Points []dynamo.Point3
}

func (t *Trajectory) Len() int { return len(t.Points) }

// Last returns the most recent point. Trajectories always hold at least
// their initial condition.
func (t *Trajectory) Last() dynamo.Point3 { return t.Points[len(t.Points)-1] }

func (t *Trajectory) append(p dynamo.Point3) { t.Points = append(t.Points, p) }
