package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveParamsFromFlag(t *testing.T) {
	p, err := resolveParams(7, nil)
	assert.NoError(t, err)
	assert.Equal(t, 7, p.VelocityOrder)
	assert.Equal(t, 5, p.PressureOrder)
	assert.Equal(t, 7, p.DealiasOrder)
}

// A file that only sets the velocity order must get its staggering
// defaults from that order, even when it differs from the flag default.
func TestResolveParamsFileOverridesFlag(t *testing.T) {
	data := []byte("VelocityOrder: 8\n")
	p, err := resolveParams(7, data)
	assert.NoError(t, err)
	assert.Equal(t, 8, p.VelocityOrder)
	assert.Equal(t, 6, p.PressureOrder)
	assert.Equal(t, 8, p.DealiasOrder)
}

func TestResolveParamsInvalidFile(t *testing.T) {
	data := []byte("VelocityOrder: 8\nDealiasOrder: 4\n")
	_, err := resolveParams(7, data)
	assert.Error(t, err)
}
