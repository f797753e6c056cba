package comm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplicityOfSharedNodes(t *testing.T) {
	// two 1D elements of 3 nodes sharing their interface node: global
	// numbering 0..4, global node 2 appears twice locally
	local2global := []int{0, 1, 2, 2, 3, 4}
	mult, err := Multiplicity(local2global, 5)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 2, 1, 1}, mult)
}

func TestPartitionOfUnityWeights(t *testing.T) {
	local2global := []int{0, 1, 2, 2, 3, 4}
	w, err := PartitionOfUnity(local2global, 5)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0.5, 0.5, 1, 1}, w)

	// weighted count of each global dof sums to the global node count
	var sum float64
	for _, v := range w {
		sum += v
	}
	assert.Equal(t, 5., sum)
}

func TestPartitionOfUnityWeightedSum(t *testing.T) {
	// a reduction over local arrays weighted by the partition of unity
	// counts each global dof exactly once
	local2global := []int{0, 1, 2, 2, 3, 4}
	w, err := PartitionOfUnity(local2global, 5)
	assert.NoError(t, err)
	field := []float64{10, 11, 12, 12, 13, 14} // consistent shared values
	var got float64
	for i, v := range field {
		got += v * w[i]
	}
	assert.InDelta(t, 10+11+12+13+14, got, 1.e-12)
}

func TestMultiplicityOutOfRange(t *testing.T) {
	_, err := Multiplicity([]int{0, 5}, 5)
	assert.Error(t, err)
	_, err = Multiplicity([]int{-1}, 5)
	assert.Error(t, err)
}
