package comm

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// Multiplicity counts, for each local degree of freedom, how many local
// dofs map to the same global dof. It builds the boolean gather matrix Q
// (local x global) and reads the diagonal of Q*Qt: entry (i,i) is the number
// of times dof i's global node appears in the local numbering.
func Multiplicity(local2global []int, nGlobal int) (mult []float64, err error) {
	var (
		nLocal = len(local2global)
	)
	Q := sparse.NewDOK(nLocal, nGlobal)
	for i, g := range local2global {
		if g < 0 || g >= nGlobal {
			err = fmt.Errorf("global dof %d at local %d out of range [0,%d)", g, i, nGlobal)
			return
		}
		Q.Set(i, g, 1)
	}
	Qcsr := Q.ToCSR()
	QQt := sparse.NewCSR(nLocal, nLocal, nil, nil, nil)
	QQt.Mul(Qcsr, Qcsr.T())
	mult = make([]float64, nLocal)
	for i := range mult {
		mult[i] = QQt.At(i, i)
	}
	return
}

// PartitionOfUnity returns the 1/multiplicity weights that make a weighted
// reduction over shared nodes count each global degree of freedom exactly
// once. These weights multiply the mass-matrix diagonal handed to Dot3.
func PartitionOfUnity(local2global []int, nGlobal int) (w []float64, err error) {
	if w, err = Multiplicity(local2global, nGlobal); err != nil {
		return
	}
	for i, m := range w {
		w[i] = 1 / m
	}
	return
}
