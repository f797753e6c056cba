package sem

import (
	"fmt"

	"github.com/negips/nek1093/utils"
)

// Mesh tags one of the staggered discretizations held by a Space.
type Mesh uint8

const (
	Velocity Mesh = iota // Lobatto nodes, order Nv
	Pressure             // Gauss nodes, order Np = Nv-2
	Dealias              // Lobatto nodes, placeholder for a finer rule
	numMeshes
)

func (m Mesh) String() string {
	switch m {
	case Velocity:
		return "velocity"
	case Pressure:
		return "pressure"
	case Dealias:
		return "dealias"
	}
	return "unknown"
}

// MeshOps is the 1D operator set of a single mesh.
type MeshOps struct {
	Family NodeFamily
	Order  int
	Z, W   utils.Vector // collocation nodes and quadrature weights
	D, DT  utils.Matrix // differentiation matrix and its transpose
	B      utils.Matrix // diagonal mass matrix, diag(W)
}

// Space is the process-wide operator state of a run, the replacement for
// the solver's per-element operator common block. It is built once from the
// configured polynomial orders and is read-only afterwards; concurrent
// readers need no synchronization.
type Space struct {
	meshes [numMeshes]MeshOps
	// interp[from][to] maps nodal values between meshes; interpT holds the
	// transposes used for adjoint operators.
	interp  [numMeshes][numMeshes]utils.Matrix
	interpT [numMeshes][numMeshes]utils.Matrix
}

// NewSpace builds the operator state for velocity-mesh order nv with the
// conventional staggering: pressure order nv-2 and a dealias mesh that is,
// for now, the velocity mesh at the same order.
func NewSpace(nv int) (s *Space, err error) {
	return NewSpaceOrders(nv, nv-2, nv)
}

// NewSpaceOrders builds the operator state with explicit per-mesh orders.
// The pressure order must stay strictly below the velocity order to keep the
// staggering free of spurious pressure modes.
func NewSpaceOrders(nv, np, nd int) (s *Space, err error) {
	if nv < 2 {
		err = fmt.Errorf("%w: velocity order %d, must be >= 2", ErrInvalidOrder, nv)
		return
	}
	if np < 0 || np >= nv {
		err = fmt.Errorf("%w: pressure order %d with velocity order %d, need 0 <= Np < Nv",
			ErrInvalidOrder, np, nv)
		return
	}
	if nd < nv {
		err = fmt.Errorf("%w: dealias order %d, must be >= velocity order %d",
			ErrInvalidOrder, nd, nv)
		return
	}
	s = &Space{}
	if s.meshes[Velocity], err = buildMesh(Lobatto, nv); err != nil {
		return nil, fmt.Errorf("building velocity mesh: %w", err)
	}
	if s.meshes[Pressure], err = buildMesh(Gauss, np); err != nil {
		return nil, fmt.Errorf("building pressure mesh: %w", err)
	}
	if s.meshes[Dealias], err = buildMesh(Lobatto, nd); err != nil {
		return nil, fmt.Errorf("building dealias mesh: %w", err)
	}
	s.buildInterp()
	return
}

func buildMesh(family NodeFamily, order int) (mo MeshOps, err error) {
	mo.Family = family
	mo.Order = order
	if mo.Z, mo.W, err = Quadrature(family, order); err != nil {
		return
	}
	mo.D = DerivMatrix(mo.Z)
	mo.DT = mo.D.Transpose()
	mo.B = MassMatrix(mo.W)
	mo.D.SetReadOnly(fmt.Sprintf("D[%v]", family))
	mo.DT.SetReadOnly(fmt.Sprintf("DT[%v]", family))
	mo.B.SetReadOnly(fmt.Sprintf("B[%v]", family))
	return
}

// buildInterp fills the inter-mesh maps. Direct pairs are Lagrange
// evaluation; pairs not sharing the velocity mesh are composed as ordered
// products of the direct maps rather than derived separately.
func (s *Space) buildInterp() {
	for from := Mesh(0); from < numMeshes; from++ {
		s.interp[from][from] = identity(s.meshes[from].Z.Len())
	}
	zv := s.meshes[Velocity].Z
	for _, m := range []Mesh{Pressure, Dealias} {
		zm := s.meshes[m].Z
		s.interp[Velocity][m] = InterpMatrix(zv, zm)
		s.interp[m][Velocity] = InterpMatrix(zm, zv)
	}
	// pressure <-> dealias through the velocity mesh
	s.interp[Pressure][Dealias] = s.interp[Velocity][Dealias].Mul(s.interp[Pressure][Velocity])
	s.interp[Dealias][Pressure] = s.interp[Velocity][Pressure].Mul(s.interp[Dealias][Velocity])

	for from := Mesh(0); from < numMeshes; from++ {
		for to := Mesh(0); to < numMeshes; to++ {
			s.interpT[from][to] = s.interp[from][to].Transpose()
			s.interp[from][to].SetReadOnly(fmt.Sprintf("I[%v->%v]", from, to))
			s.interpT[from][to].SetReadOnly(fmt.Sprintf("IT[%v->%v]", from, to))
		}
	}
}

func (s *Space) mesh(m Mesh) *MeshOps {
	if m >= numMeshes {
		panic(fmt.Errorf("unknown mesh tag %d", m))
	}
	return &s.meshes[m]
}

// Order returns the polynomial order of the tagged mesh.
func (s *Space) Order(m Mesh) int { return s.mesh(m).Order }

// Family returns the node family of the tagged mesh.
func (s *Space) Family(m Mesh) NodeFamily { return s.mesh(m).Family }

// Nodes returns the collocation nodes of the tagged mesh.
func (s *Space) Nodes(m Mesh) utils.Vector { return s.mesh(m).Z }

// Weights returns the quadrature weights of the tagged mesh.
func (s *Space) Weights(m Mesh) utils.Vector { return s.mesh(m).W }

// Deriv returns the 1D differentiation matrix of the tagged mesh.
func (s *Space) Deriv(m Mesh) utils.Matrix { return s.mesh(m).D }

// DerivT returns the transposed differentiation matrix, used for the
// adjoint/divergence-form operators of the consuming solver.
func (s *Space) DerivT(m Mesh) utils.Matrix { return s.mesh(m).DT }

// Mass returns the diagonal 1D mass matrix of the tagged mesh.
func (s *Space) Mass(m Mesh) utils.Matrix { return s.mesh(m).B }

// Interp returns the nodal map from one mesh to another.
func (s *Space) Interp(from, to Mesh) utils.Matrix {
	s.mesh(from)
	s.mesh(to)
	return s.interp[from][to]
}

// InterpT returns the transpose of Interp(from, to).
func (s *Space) InterpT(from, to Mesh) utils.Matrix {
	s.mesh(from)
	s.mesh(to)
	return s.interpT[from][to]
}
