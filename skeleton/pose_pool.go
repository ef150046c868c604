package skeleton

import (
	"sync"

	"go.uber.org/atomic"
)

// PosePool hands out scratch poses. One pool is typically shared by every instance evaluated on
// the same worker, so requests and releases are safe for concurrent use. Every pose requested must
// be freed exactly once.
type PosePool struct {
	mu   sync.Mutex
	free []*Pose

	numAllocated atomic.Int64
	numInUse     atomic.Int64
}

// NewPosePool returns an empty pool.
func NewPosePool() *PosePool {
	return &PosePool{}
}

// RequestPose returns a pose linked to inst and initialized to its bind pose.
func (pp *PosePool) RequestPose(inst *Instance) *Pose {
	var p *Pose
	pp.mu.Lock()
	if n := len(pp.free); n > 0 {
		p = pp.free[n-1]
		pp.free[n-1] = nil
		pp.free = pp.free[:n-1]
	}
	pp.mu.Unlock()

	if p == nil {
		p = &Pose{}
		pp.numAllocated.Inc()
	}
	p.inPool = false
	p.LinkToInstance(inst)
	pp.numInUse.Inc()
	return p
}

// FreePose returns p to the pool. Freeing nil or an already freed pose does nothing.
func (pp *PosePool) FreePose(p *Pose) {
	if p == nil {
		return
	}
	pp.mu.Lock()
	defer pp.mu.Unlock()
	if p.inPool {
		return
	}
	p.ClearPoseData()
	p.instance = nil
	p.inPool = true
	pp.free = append(pp.free, p)
	pp.numInUse.Dec()
}

// Outstanding returns how many requested poses have not been freed yet.
func (pp *PosePool) Outstanding() int64 {
	return pp.numInUse.Load()
}

// NumAllocated returns how many poses the pool has created over its lifetime.
func (pp *PosePool) NumAllocated() int64 {
	return pp.numAllocated.Load()
}

// NumFree returns how many poses are waiting to be reused.
func (pp *PosePool) NumFree() int {
	pp.mu.Lock()
	defer pp.mu.Unlock()
	return len(pp.free)
}
