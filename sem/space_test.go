package sem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSpaceStaggering(t *testing.T) {
	s, err := NewSpace(8)
	assert.NoError(t, err)
	assert.Equal(t, 8, s.Order(Velocity))
	assert.Equal(t, 6, s.Order(Pressure))
	assert.Equal(t, 8, s.Order(Dealias))
	assert.Equal(t, Lobatto, s.Family(Velocity))
	assert.Equal(t, Gauss, s.Family(Pressure))
	assert.Equal(t, Lobatto, s.Family(Dealias))

	assert.Equal(t, 9, s.Nodes(Velocity).Len())
	assert.Equal(t, 7, s.Nodes(Pressure).Len())

	nr, nc := s.Deriv(Velocity).Dims()
	assert.Equal(t, 9, nr)
	assert.Equal(t, 9, nc)

	// velocity -> pressure maps 9 nodal values to 7
	nr, nc = s.Interp(Velocity, Pressure).Dims()
	assert.Equal(t, 7, nr)
	assert.Equal(t, 9, nc)
	nr, nc = s.InterpT(Velocity, Pressure).Dims()
	assert.Equal(t, 9, nr)
	assert.Equal(t, 7, nc)
}

func TestNewSpaceInvalidOrders(t *testing.T) {
	_, err := NewSpace(1)
	assert.ErrorIs(t, err, ErrInvalidOrder)
	_, err = NewSpaceOrders(4, 4, 4) // pressure order must stay below velocity
	assert.ErrorIs(t, err, ErrInvalidOrder)
	_, err = NewSpaceOrders(4, -1, 4)
	assert.ErrorIs(t, err, ErrInvalidOrder)
	_, err = NewSpaceOrders(4, 2, 3) // dealias coarser than velocity
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestSpaceDerivTIsTranspose(t *testing.T) {
	s, err := NewSpace(6)
	assert.NoError(t, err)
	D := s.Deriv(Velocity)
	DT := s.DerivT(Velocity)
	nr, nc := D.Dims()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			assert.Equal(t, D.At(i, j), DT.At(j, i))
		}
	}
}

func TestSpaceOperatorsAreReadOnly(t *testing.T) {
	s, err := NewSpace(4)
	assert.NoError(t, err)
	assert.Panics(t, func() {
		s.Deriv(Velocity).Set(0, 0, 99)
	})
	assert.Panics(t, func() {
		s.Interp(Velocity, Pressure).Set(0, 0, 99)
	})
}

func TestSpaceSelfInterpIsIdentity(t *testing.T) {
	s, err := NewSpace(5)
	assert.NoError(t, err)
	I := s.Interp(Pressure, Pressure)
	nr, nc := I.Dims()
	assert.Equal(t, nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			want := 0.
			if i == j {
				want = 1
			}
			assert.Equal(t, want, I.At(i, j))
		}
	}
}

func TestSpaceCompositeInterp(t *testing.T) {
	// pressure -> dealias is composed through the velocity mesh; a cubic
	// representable on the order-3 pressure mesh must survive exactly
	s, err := NewSpace(5)
	assert.NoError(t, err)
	zp := s.Nodes(Pressure).Data()
	zd := s.Nodes(Dealias).Data()
	f := make([]float64, len(zp))
	for i, x := range zp {
		f[i] = x*x*x - 0.5*x
	}
	g, err := s.Interp(Pressure, Dealias).MulVec(f)
	assert.NoError(t, err)
	for i, x := range zd {
		assert.InDelta(t, x*x*x-0.5*x, g[i], 1.e-12)
	}
}

func TestSpaceRebuildBitIdentical(t *testing.T) {
	s1, err := NewSpace(7)
	assert.NoError(t, err)
	s2, err := NewSpace(7)
	assert.NoError(t, err)
	assert.Equal(t, s1.Nodes(Velocity).Data(), s2.Nodes(Velocity).Data())
	assert.Equal(t, s1.Weights(Pressure).Data(), s2.Weights(Pressure).Data())
	assert.Equal(t, s1.Deriv(Velocity).RawMatrix().Data, s2.Deriv(Velocity).RawMatrix().Data)
	assert.Equal(t, s1.Interp(Velocity, Pressure).RawMatrix().Data,
		s2.Interp(Velocity, Pressure).RawMatrix().Data)
}
