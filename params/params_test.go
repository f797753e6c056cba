package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppliesStaggeringDefaults(t *testing.T) {
	data := []byte(`
Title: "Channel"
VelocityOrder: 8
Ranks: 4
Elements: 32
`)
	p := &Parameters{}
	assert.NoError(t, p.Parse(data))
	assert.Equal(t, "Channel", p.Title)
	assert.Equal(t, 8, p.VelocityOrder)
	assert.Equal(t, 6, p.PressureOrder)
	assert.Equal(t, 8, p.DealiasOrder)
	assert.Equal(t, 4, p.Ranks)
	assert.Equal(t, 32, p.Elements)
}

func TestParseExplicitOrders(t *testing.T) {
	data := []byte(`
VelocityOrder: 7
PressureOrder: 5
DealiasOrder: 10
`)
	p := &Parameters{}
	assert.NoError(t, p.Parse(data))
	assert.Equal(t, 5, p.PressureOrder)
	assert.Equal(t, 10, p.DealiasOrder)
	assert.Equal(t, 1, p.Ranks)
	assert.Equal(t, 1, p.Elements)
}

func TestValidateRejectsBadOrders(t *testing.T) {
	parse := func(data string) error {
		p := &Parameters{}
		return p.Parse([]byte(data))
	}
	assert.Error(t, parse("VelocityOrder: 1"))
	assert.Error(t, parse("VelocityOrder: 6\nPressureOrder: 6\n"))
	assert.Error(t, parse("VelocityOrder: 6\nDealiasOrder: 4\n"))
	assert.Error(t, parse("VelocityOrder: 6\nRanks: 4\nElements: 2\n"))
}

func TestNewDefaults(t *testing.T) {
	p := New(6)
	assert.NoError(t, p.Validate())
	assert.Equal(t, 4, p.PressureOrder)
	assert.Equal(t, 6, p.DealiasOrder)
	assert.Equal(t, 1, p.Ranks)
}
