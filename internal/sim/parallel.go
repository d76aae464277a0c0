package sim

import (
	"context"

	"github.com/san-kum/attractors/internal/dynamo"
)

const minParallelChunk = 8

// StepParallel has the same effect as Step but fans trajectories out over
// up to workers goroutines and joins before returning. Trajectories share
// no mutable state so no further synchronisation is needed. If ctx is
// cancelled part way, some trajectories may be one point ahead of others.
func (a *Attractor) StepParallel(ctx context.Context, workers int) error {
	active := a.active
	return dynamo.ParallelFor(ctx, len(active), minParallelChunk, workers, func(start, end int) {
		for _, id := range active[start:end] {
			a.advance(a.arena[id])
		}
	})
}
