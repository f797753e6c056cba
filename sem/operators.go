package sem

import (
	"fmt"

	"github.com/negips/nek1093/utils"
)

// nodeHitTol decides when an evaluation point coincides with a source node,
// in which case the interpolation row is a unit vector rather than the
// barycentric form (which would divide by zero).
const nodeHitTol = 1.0e-14

// lagrangeWeights returns the barycentric weights
//
//	lambda_j = 1 / prod_{k != j} (x_j - x_k)
//
// of the Lagrange basis on the node set x.
func lagrangeWeights(x []float64) (lambda []float64) {
	n := len(x)
	lambda = make([]float64, n)
	for j := 0; j < n; j++ {
		prod := 1.0
		for k := 0; k < n; k++ {
			if k != j {
				prod *= x[j] - x[k]
			}
		}
		lambda[j] = 1 / prod
	}
	return
}

// DerivMatrix builds the differentiation matrix D with D[i][j] = L'_j(x_i),
// so that D applied to nodal values of any polynomial of degree <= len(x)-1
// reproduces the exact nodal derivative. Off-diagonal entries come from the
// barycentric form; the diagonal is the negative row sum, which enforces
// exactness on constants.
func DerivMatrix(X utils.Vector) (D utils.Matrix) {
	var (
		x      = X.Data()
		n      = len(x)
		lambda = lagrangeWeights(x)
	)
	D = utils.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		var rowSum float64
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dij := (lambda[j] / lambda[i]) / (x[i] - x[j])
			D.Set(i, j, dij)
			rowSum += dij
		}
		D.Set(i, i, -rowSum)
	}
	return
}

// InterpMatrix builds the matrix I with I[i][j] = L_j(y_i) mapping nodal
// values on the source set X to values at the target points Y. This is pure
// evaluation of the source Lagrange basis, exact for any polynomial of
// degree <= len(X)-1 regardless of the target point count.
func InterpMatrix(X, Y utils.Vector) (I utils.Matrix) {
	var (
		x      = X.Data()
		y      = Y.Data()
		n      = len(x)
		lambda = lagrangeWeights(x)
	)
	I = utils.NewMatrix(len(y), n)
	row := make([]float64, n)
	for i, yi := range y {
		hit := -1
		for j, xj := range x {
			if d := yi - xj; d < nodeHitTol && d > -nodeHitTol {
				hit = j
				break
			}
		}
		for j := range row {
			row[j] = 0
		}
		if hit >= 0 {
			row[hit] = 1
		} else {
			var sum float64
			for j, xj := range x {
				t := lambda[j] / (yi - xj)
				row[j] = t
				sum += t
			}
			for j := range row {
				row[j] /= sum
			}
		}
		I.SetRow(i, row)
	}
	return
}

// MassMatrix is the diagonal 1D mass matrix of a quadrature rule. The
// solver owns the tensor-product combination across dimensions and the
// geometric Jacobian factors.
func MassMatrix(W utils.Vector) (B utils.Matrix) {
	B = utils.NewDiagMatrix(W.Len(), W.Data())
	return
}

// identity returns the n x n identity, the self-map every mesh interpolates
// through.
func identity(n int) (I utils.Matrix) {
	I = utils.NewDiagMatrix(n, utils.ConstArray(n, 1))
	return
}

// checkLen guards an operator application against a wrongly sized array.
func checkLen(what string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has length %d, operator needs %d",
			ErrDimensionMismatch, what, got, want)
	}
	return nil
}
