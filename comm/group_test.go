package comm

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runSPMD starts np goroutines, each given its rank handle, and waits for
// all of them.
func runSPMD(g *Group, body func(r *Rank)) {
	var wg sync.WaitGroup
	for id := 0; id < g.Size(); id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			body(g.Rank(id))
		}(id)
	}
	wg.Wait()
}

func TestGlobalSumOfOnes(t *testing.T) {
	// k ranks times m local entries of 1.0 must reduce to exactly k*m
	for _, np := range []int{1, 2, 5, 8} {
		const m = 17
		g, err := NewGroup(np)
		assert.NoError(t, err)
		results := make([]float64, np)
		runSPMD(g, func(r *Rank) {
			local := make([]float64, m)
			for i := range local {
				local[i] = 1
			}
			results[r.ID()] = r.Sum(local)
		})
		for _, v := range results {
			assert.Equal(t, float64(np*m), v)
		}
	}
}

func TestGlobalMaxMin(t *testing.T) {
	g, err := NewGroup(4)
	assert.NoError(t, err)
	maxs := make([]float64, 4)
	mins := make([]float64, 4)
	runSPMD(g, func(r *Rank) {
		// rank i owns {i, i+0.5, -i}
		fid := float64(r.ID())
		local := []float64{fid, fid + 0.5, -fid}
		maxs[r.ID()] = r.Max(local)
		mins[r.ID()] = r.Min(local)
	})
	for id := 0; id < 4; id++ {
		assert.Equal(t, 3.5, maxs[id])
		assert.Equal(t, -3., mins[id])
	}
}

func TestDot3PartitionIndependence(t *testing.T) {
	// the same weighted inner product computed serially and split over any
	// rank count must agree within rounding
	const n = 240
	var (
		a = make([]float64, n)
		b = make([]float64, n)
		w = make([]float64, n)
	)
	for i := range a {
		a[i] = math.Sin(float64(i) * 0.31)
		b[i] = math.Cos(float64(i) * 0.17)
		w[i] = 0.5 + float64(i%7)*0.1
	}
	var serial float64
	for i := range a {
		serial += a[i] * b[i] * w[i]
	}

	for np := 1; np <= 8; np++ {
		g, err := NewGroup(np)
		assert.NoError(t, err)
		pm := NewPartitionMap(np, n)
		results := make([]float64, np)
		runSPMD(g, func(r *Rank) {
			k1, k2 := pm.GetBucketRange(r.ID())
			dot, dotErr := r.Dot3(a[k1:k2], b[k1:k2], w[k1:k2])
			assert.NoError(t, dotErr)
			results[r.ID()] = dot
		})
		for _, v := range results {
			assert.InDelta(t, serial, v, 1.e-12*math.Abs(serial)+1.e-13)
		}
	}
}

func TestResultBitIdenticalAcrossRanks(t *testing.T) {
	// every rank must observe the same bits, independent of arrival order
	const np = 6
	g, err := NewGroup(np)
	assert.NoError(t, err)
	results := make([]float64, np)
	runSPMD(g, func(r *Rank) {
		local := []float64{0.1 * float64(r.ID()+1), 1e-9}
		results[r.ID()] = r.Sum(local)
	})
	for id := 1; id < np; id++ {
		assert.Equal(t, results[0], results[id])
	}
}

func TestRepeatedCollectives(t *testing.T) {
	// the barrier is reusable across the run's sequence of reductions
	const np = 3
	g, err := NewGroup(np)
	assert.NoError(t, err)
	sums := make([][]float64, np)
	runSPMD(g, func(r *Rank) {
		for round := 0; round < 50; round++ {
			v := r.Sum([]float64{float64(round)})
			sums[r.ID()] = append(sums[r.ID()], v)
		}
	})
	for id := 0; id < np; id++ {
		for round := 0; round < 50; round++ {
			assert.Equal(t, float64(np*round), sums[id][round])
		}
	}
}

func TestDot3DimensionMismatch(t *testing.T) {
	// the check fires before the collective is posted, so a single rank
	// group returns immediately instead of wedging
	g, err := NewGroup(1)
	assert.NoError(t, err)
	_, err = g.Rank(0).Dot3([]float64{1, 2}, []float64{1}, []float64{1, 1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestGroupValidation(t *testing.T) {
	_, err := NewGroup(0)
	assert.Error(t, err)
	g, err := NewGroup(2)
	assert.NoError(t, err)
	assert.Panics(t, func() { g.Rank(2) })
	assert.Panics(t, func() { g.Rank(-1) })
}
