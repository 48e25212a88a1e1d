package featureflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerParsing(t *testing.T) {
	m := NewManager(" Blog = ON , delivery_booking=off, broken, =oops, legacy= ")

	assert.True(t, m.Enabled("blog", 0))
	assert.False(t, m.Enabled("delivery_booking", 0))
	assert.False(t, m.Enabled("broken", 0))
	assert.False(t, m.Enabled("legacy", 0))
	assert.False(t, m.Enabled("never_configured", 0))
}

func TestManagerBooleanValues(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"on", true},
		{"true", true},
		{"1", true},
		{"off", false},
		{"false", false},
		{"0", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			m := NewManager("flag=" + tt.value)
			assert.Equal(t, tt.expected, m.Enabled("flag", 42))
		})
	}
}

func TestManagerPercentageRollout(t *testing.T) {
	m := NewManager("beta=50%")

	// Same user always lands in the same bucket.
	first := m.Enabled("beta", 7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.Enabled("beta", 7))
	}

	// Over a large population both buckets are hit.
	enabled := 0
	for id := uint(1); id <= 1000; id++ {
		if m.Enabled("beta", id) {
			enabled++
		}
	}
	assert.Greater(t, enabled, 0)
	assert.Less(t, enabled, 1000)

	// Anonymous users never get partial rollouts.
	assert.False(t, m.Enabled("beta", 0))
}

func TestManagerPercentageEdges(t *testing.T) {
	assert.False(t, NewManager("beta=0%").Enabled("beta", 42))
	assert.True(t, NewManager("beta=100%").Enabled("beta", 42))
	assert.True(t, NewManager("beta=250%").Enabled("beta", 42))
	assert.False(t, NewManager("beta=abc%").Enabled("beta", 42))
}

func TestManagerNil(t *testing.T) {
	var m *Manager
	assert.False(t, m.Enabled("blog", 1))
}

func TestManagerSnapshot(t *testing.T) {
	m := NewManager("blog=on,delivery_booking=off")

	snap := m.Snapshot(1)
	assert.Equal(t, map[string]bool{"blog": true, "delivery_booking": false}, snap)

	raw := m.Raw()
	assert.Equal(t, map[string]string{"blog": "on", "delivery_booking": "off"}, raw)

	// Raw returns a copy; mutating it must not affect evaluation.
	raw["blog"] = "off"
	assert.True(t, m.Enabled("blog", 1))
}
