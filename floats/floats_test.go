package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEpsilon(t *testing.T) {
	type celsius float32

	assert.Equal(t, float32(DefaultEpsilon32), DefaultEpsilon[float32]())
	assert.Equal(t, float64(DefaultEpsilon64), DefaultEpsilon[float64]())
	assert.Equal(t, celsius(DefaultEpsilon32), DefaultEpsilon[celsius]())
}

func TestCompareFloat32(t *testing.T) {
	const base float32 = 1.5

	tests := []struct {
		name                 string
		value                float32
		eq, lt, gt, lte, gte bool
	}{
		{"within epsilon above", base + 1e-6, true, false, false, true, true},
		{"within epsilon below", base - 1e-6, true, false, false, true, true},
		{"clearly less", base - 1e-3, false, true, false, true, false},
		{"clearly greater", base + 1e-3, false, false, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.eq, Equal(tt.value, base), "Equal")
			assert.Equal(t, tt.lt, Less(tt.value, base), "Less")
			assert.Equal(t, tt.gt, Greater(tt.value, base), "Greater")
			assert.Equal(t, tt.lte, LessOrEqual(tt.value, base), "LessOrEqual")
			assert.Equal(t, tt.gte, GreaterOrEqual(tt.value, base), "GreaterOrEqual")
		})
	}
}

func TestCompareFloat64(t *testing.T) {
	const base = 2.25

	tests := []struct {
		name                 string
		value                float64
		eq, lt, gt, lte, gte bool
	}{
		{"within epsilon above", base + 1e-10, true, false, false, true, true},
		{"within epsilon below", base - 1e-10, true, false, false, true, true},
		{"clearly less", base - 1e-6, false, true, false, true, false},
		{"clearly greater", base + 1e-6, false, false, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.eq, Equal(tt.value, base), "Equal")
			assert.Equal(t, tt.lt, Less(tt.value, base), "Less")
			assert.Equal(t, tt.gt, Greater(tt.value, base), "Greater")
			assert.Equal(t, tt.lte, LessOrEqual(tt.value, base), "LessOrEqual")
			assert.Equal(t, tt.gte, GreaterOrEqual(tt.value, base), "GreaterOrEqual")
		})
	}
}

func TestExplicitEpsilon(t *testing.T) {
	assert.True(t, EqualEpsilon(1.0, 1.4, 0.5))
	assert.False(t, LessEpsilon(1.0, 1.4, 0.5))
	assert.True(t, LessEpsilon(1.0, 1.6, 0.5))
	assert.True(t, GreaterEpsilon(1.6, 1.0, 0.5))
	assert.True(t, LessOrEqualEpsilon(1.4, 1.0, 0.5))
	assert.True(t, GreaterOrEqualEpsilon(1.0, 1.4, 0.5))
}
