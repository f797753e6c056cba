package sem

import (
	"fmt"
	"math"

	"github.com/negips/nek1093/utils"
)

// NodeFamily selects the 1D collocation node placement.
type NodeFamily uint8

const (
	// Lobatto nodes are the roots of (1-x^2) P'_N(x), endpoints included.
	// Used for the velocity/geometry mesh. Quadrature exact to degree 2N-1.
	Lobatto NodeFamily = iota
	// Gauss nodes are the roots of P_{N+1}(x), endpoints excluded. Used
	// for the staggered pressure mesh. Quadrature exact to degree 2N+1.
	Gauss
)

func (nf NodeFamily) String() string {
	switch nf {
	case Lobatto:
		return "Lobatto"
	case Gauss:
		return "Gauss"
	}
	return "Unknown"
}

const (
	newtonCap = 100
	eps       = 2.220446049250313e-16
	newtonTol = 8 * eps
)

// Quadrature returns the N+1 nodes and weights of the requested rule on
// [-1,1]. Nodes are strictly increasing and exactly symmetric about 0: the
// negative half is found by Newton iteration from Chebyshev seeds and the
// positive half is its mirror image, so two calls with the same arguments
// are bit-identical.
func Quadrature(family NodeFamily, N int) (X, W utils.Vector, err error) {
	switch family {
	case Gauss:
		if N < 0 {
			err = fmt.Errorf("%w: Gauss order %d, must be >= 0", ErrInvalidOrder, N)
			return
		}
		return gaussRule(N)
	case Lobatto:
		if N < 1 {
			err = fmt.Errorf("%w: Lobatto order %d, must be >= 1", ErrInvalidOrder, N)
			return
		}
		return lobattoRule(N)
	}
	err = fmt.Errorf("%w: unknown node family %d", ErrInvalidOrder, family)
	return
}

// gaussRule finds the N+1 roots of P_{N+1} and the Gauss-Legendre weights
//
//	w_i = 2 / ((1-x_i^2) P'_{N+1}(x_i)^2)
func gaussRule(N int) (X, W utils.Vector, err error) {
	var (
		n = N + 1 // number of nodes, degree of the Legendre polynomial
		x = make([]float64, n)
		w = make([]float64, n)
	)
	for k := 0; k < n/2; k++ {
		seed := -math.Cos(math.Pi * (2*float64(k) + 1) / (2 * float64(n)))
		var xk float64
		if xk, err = newton(seed, func(x float64) (f, df float64) {
			return Legendre(n, x)
		}); err != nil {
			err = fmt.Errorf("Gauss order %d, node %d: %w", N, k, err)
			return
		}
		_, dp := Legendre(n, xk)
		x[k], x[n-1-k] = xk, -xk
		wk := 2 / ((1 - xk*xk) * dp * dp)
		w[k], w[n-1-k] = wk, wk
	}
	if n%2 == 1 {
		// P_n with n odd has a root at the origin
		_, dp := Legendre(n, 0)
		x[n/2] = 0
		w[n/2] = 2 / (dp * dp)
	}
	X, W = utils.NewVector(n, x), utils.NewVector(n, w)
	return
}

// lobattoRule pins the endpoints and finds the N-1 interior roots of P'_N,
// with the Gauss-Lobatto-Legendre weights
//
//	w_i = 2 / (N (N+1) P_N(x_i)^2)
func lobattoRule(N int) (X, W utils.Vector, err error) {
	var (
		n   = N + 1
		x   = make([]float64, n)
		w   = make([]float64, n)
		fac = 2 / (float64(N) * float64(N+1))
	)
	x[0], x[N] = -1, 1
	w[0], w[N] = fac, fac // P_N(+-1)^2 = 1

	m := N - 1 // interior node count
	for k := 0; k < m/2; k++ {
		seed := -math.Cos(math.Pi * float64(k+1) / float64(N))
		var xk float64
		if xk, err = newton(seed, func(x float64) (f, df float64) {
			return legendreD2(N, x)
		}); err != nil {
			err = fmt.Errorf("Lobatto order %d, node %d: %w", N, k+1, err)
			return
		}
		p, _ := Legendre(N, xk)
		x[k+1], x[N-1-k] = xk, -xk
		wk := fac / (p * p)
		w[k+1], w[N-1-k] = wk, wk
	}
	if m%2 == 1 {
		// P'_N with N even has a root at the origin
		p, _ := Legendre(N, 0)
		x[N/2] = 0
		w[N/2] = fac / (p * p)
	}
	X, W = utils.NewVector(n, x), utils.NewVector(n, w)
	return
}

// newton runs a capped Newton iteration on f from the given seed. The
// Chebyshev seeds used by the rules above land close enough that the cap is
// never reached in practice; hitting it means the node set is unusable and
// the caller must abort construction.
func newton(seed float64, f func(x float64) (f, df float64)) (x float64, err error) {
	x = seed
	for iter := 0; iter < newtonCap; iter++ {
		fx, dfx := f(x)
		dx := fx / dfx
		x -= dx
		if math.Abs(dx) <= newtonTol*math.Max(1, math.Abs(x)) {
			return
		}
	}
	err = fmt.Errorf("%w: seed %v, cap %d", ErrConvergenceFailure, seed, newtonCap)
	return
}
