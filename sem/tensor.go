package sem

import (
	"github.com/negips/nek1093/utils"
)

// Tensor describes the shape of a single element's nodal field, stored flat
// with the first dimension fastest: f[i + n1*(j + n2*k)]. A 2D element sets
// N3 = 1, a 1D element sets N2 = N3 = 1.
//
// A full d-dimensional operator is never materialized; 1D operators are
// applied one dimension at a time, which keeps the per-element cost at
// O(N^{d+1}) instead of the O(N^{2d}) of a dense multi-dimensional matrix.
type Tensor struct {
	N1, N2, N3 int
}

// NewTensor3D describes an n^3 hexahedral element field.
func NewTensor3D(n int) Tensor { return Tensor{n, n, n} }

// NewTensor2D describes an n^2 quadrilateral element field.
func NewTensor2D(n int) Tensor { return Tensor{n, n, 1} }

// Len is the number of nodal values in the element.
func (t Tensor) Len() int { return t.N1 * t.N2 * t.N3 }

// Apply1 contracts A over the first (fastest) dimension:
//
//	g(i,j,k) = sum_m A(i,m) f(m,j,k)
func (t Tensor) Apply1(A utils.Matrix, f []float64) (g []float64, err error) {
	var (
		p, q = A.Dims()
		data = A.RawMatrix().Data
	)
	if err = checkLen("field", len(f), t.Len()); err != nil {
		return
	}
	if err = checkLen("operator columns", q, t.N1); err != nil {
		return
	}
	g = make([]float64, p*t.N2*t.N3)
	for k := 0; k < t.N3; k++ {
		for j := 0; j < t.N2; j++ {
			fs := f[t.N1*(j+t.N2*k):]
			gs := g[p*(j+t.N2*k):]
			for i := 0; i < p; i++ {
				row := data[i*q : (i+1)*q]
				var sum float64
				for m, a := range row {
					sum += a * fs[m]
				}
				gs[i] = sum
			}
		}
	}
	return
}

// Apply2 contracts A over the second dimension:
//
//	g(i,j,k) = sum_m A(j,m) f(i,m,k)
func (t Tensor) Apply2(A utils.Matrix, f []float64) (g []float64, err error) {
	var (
		p, q = A.Dims()
		data = A.RawMatrix().Data
	)
	if err = checkLen("field", len(f), t.Len()); err != nil {
		return
	}
	if err = checkLen("operator columns", q, t.N2); err != nil {
		return
	}
	g = make([]float64, t.N1*p*t.N3)
	for k := 0; k < t.N3; k++ {
		for j := 0; j < p; j++ {
			row := data[j*q : (j+1)*q]
			for i := 0; i < t.N1; i++ {
				var sum float64
				for m, a := range row {
					sum += a * f[i+t.N1*(m+t.N2*k)]
				}
				g[i+t.N1*(j+p*k)] = sum
			}
		}
	}
	return
}

// Apply3 contracts A over the third (slowest) dimension:
//
//	g(i,j,k) = sum_m A(k,m) f(i,j,m)
func (t Tensor) Apply3(A utils.Matrix, f []float64) (g []float64, err error) {
	var (
		p, q = A.Dims()
		data = A.RawMatrix().Data
		slab = t.N1 * t.N2
	)
	if err = checkLen("field", len(f), t.Len()); err != nil {
		return
	}
	if err = checkLen("operator columns", q, t.N3); err != nil {
		return
	}
	g = make([]float64, slab*p)
	for k := 0; k < p; k++ {
		row := data[k*q : (k+1)*q]
		gs := g[slab*k : slab*(k+1)]
		for m, a := range row {
			if a == 0 {
				continue
			}
			fs := f[slab*m : slab*(m+1)]
			for i, v := range fs {
				gs[i] += a * v
			}
		}
	}
	return
}

// Grad applies the velocity-mesh differentiation matrix along each
// dimension, returning the three reference-space derivative fields of a 3D
// element (for 2D shapes ft is the zero field of matching length).
func (s *Space) Grad(t Tensor, f []float64) (fr, fs, ft []float64, err error) {
	D := s.Deriv(Velocity)
	if fr, err = t.Apply1(D, f); err != nil {
		return
	}
	if t.N2 > 1 {
		if fs, err = t.Apply2(D, f); err != nil {
			return
		}
	} else {
		fs = make([]float64, t.Len())
	}
	if t.N3 > 1 {
		if ft, err = t.Apply3(D, f); err != nil {
			return
		}
	} else {
		ft = make([]float64, t.Len())
	}
	return
}
