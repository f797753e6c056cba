package comm

import (
	"fmt"
	"math"
	"sync"

	"github.com/negips/nek1093/utils"
)

// ErrDimensionMismatch aliases the utils sentinel for per-call shape
// violations on weighted reductions.
var ErrDimensionMismatch = utils.ErrDimensionMismatch

// Group is a fixed-size set of SPMD ranks sharing collective reductions.
// Contributions are combined in rank order regardless of arrival order, so
// every rank observes the bit-identical result and the result does not
// depend on scheduling.
type Group struct {
	np         int
	mu         sync.Mutex
	cond       *sync.Cond
	arrived    int
	generation int
	contrib    []float64
	result     float64
}

func NewGroup(np int) (g *Group, err error) {
	if np < 1 {
		err = fmt.Errorf("group size must be >= 1, got %d", np)
		return
	}
	g = &Group{
		np:      np,
		contrib: make([]float64, np),
	}
	g.cond = sync.NewCond(&g.mu)
	return
}

func (g *Group) Size() int { return g.np }

// Rank returns the handle rank id uses for its collective calls. Each rank
// handle must be used by exactly one goroutine.
func (g *Group) Rank(id int) *Rank {
	if id < 0 || id >= g.np {
		panic(fmt.Errorf("rank %d out of range for group of %d", id, g.np))
	}
	return &Rank{g: g, id: id}
}

type Rank struct {
	g  *Group
	id int
}

func (r *Rank) ID() int { return r.id }

type combiner func(a, b float64) float64

// allReduce blocks until every rank of the group has posted its local value,
// then folds the contributions in rank order and releases all ranks with the
// same result. The generation counter makes the barrier reusable for the
// next collective in the run's sequence.
func (g *Group) allReduce(id int, local float64, op combiner) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	gen := g.generation
	g.contrib[id] = local
	g.arrived++
	if g.arrived == g.np {
		acc := g.contrib[0]
		for i := 1; i < g.np; i++ {
			acc = op(acc, g.contrib[i])
		}
		g.result = acc
		g.arrived = 0
		g.generation++
		g.cond.Broadcast()
	} else {
		for gen == g.generation {
			g.cond.Wait()
		}
	}
	return g.result
}

// Sum reduces the local array by addition and returns the global sum.
func (r *Rank) Sum(a []float64) float64 {
	var local float64
	for _, v := range a {
		local += v
	}
	return r.g.allReduce(r.id, local, func(x, y float64) float64 { return x + y })
}

// Max returns the global maximum over all ranks' local arrays. An empty
// local array contributes -Inf.
func (r *Rank) Max(a []float64) float64 {
	local := math.Inf(-1)
	for _, v := range a {
		if v > local {
			local = v
		}
	}
	return r.g.allReduce(r.id, local, math.Max)
}

// Min returns the global minimum over all ranks' local arrays. An empty
// local array contributes +Inf.
func (r *Rank) Min(a []float64) float64 {
	local := math.Inf(1)
	for _, v := range a {
		if v < local {
			local = v
		}
	}
	return r.g.allReduce(r.id, local, math.Min)
}

// Dot3 is the weighted inner product sum(a_i * b_i * mult_i) reduced across
// the group. mult is typically the mass-matrix diagonal combined with the
// partition-of-unity weights of shared nodes, so each global degree of
// freedom is counted exactly once; that precondition is owned by the mesh
// assembly layer. The length check happens before the collective is posted,
// so a malformed call fails locally instead of wedging the group.
func (r *Rank) Dot3(a, b, mult []float64) (dot float64, err error) {
	if len(b) != len(a) || len(mult) != len(a) {
		err = fmt.Errorf("%w: len(a)=%d len(b)=%d len(mult)=%d",
			ErrDimensionMismatch, len(a), len(b), len(mult))
		return
	}
	var local float64
	for i, v := range a {
		local += v * b[i] * mult[i]
	}
	dot = r.g.allReduce(r.id, local, func(x, y float64) float64 { return x + y })
	return
}
