package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateEligible(t *testing.T) {
	gate := NewGate(5)

	assert.False(t, gate.Eligible(0))
	assert.False(t, gate.Eligible(4))
	assert.True(t, gate.Eligible(5))
	assert.True(t, gate.Eligible(6))
}

func TestNewGateDefaults(t *testing.T) {
	assert.Equal(t, DefaultMinResponses, NewGate(0).Min)
	assert.Equal(t, DefaultMinResponses, NewGate(-3).Min)
	assert.Equal(t, 10, NewGate(10).Min)
}
