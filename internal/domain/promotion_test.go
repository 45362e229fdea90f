package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondHalfPrice_Apply(t *testing.T) {
	promo, err := NewSecondHalfPrice("Second Half price!")
	require.NoError(t, err)

	tests := []struct {
		quantity int
		want     float64
	}{
		{1, 10},
		{2, 15},
		{3, 25}, // two full units, one half unit
		{4, 30},
		{5, 40},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, promo.Apply(10, tt.quantity), "quantity %d", tt.quantity)
	}
}

func TestThirdOneFree_Apply(t *testing.T) {
	promo, err := NewThirdOneFree("Third One Free!")
	require.NoError(t, err)

	tests := []struct {
		quantity int
		want     float64
	}{
		{1, 10},
		{2, 20},
		{3, 20}, // one free, two full
		{4, 30},
		{6, 40},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, promo.Apply(10, tt.quantity), "quantity %d", tt.quantity)
	}
}

func TestPercentDiscount_Apply(t *testing.T) {
	promo, err := NewPercentDiscount("30% Off!", 30)
	require.NoError(t, err)

	assert.InDelta(t, 140.0, promo.Apply(100, 2), 1e-9)
	assert.InDelta(t, 70.0, promo.Apply(100, 1), 1e-9)
}

func TestPercentDiscount_RejectsNonPositivePercent(t *testing.T) {
	for _, percent := range []float64{0, -10} {
		promo, err := NewPercentDiscount("Bad Deal", percent)
		assert.Nil(t, promo)
		assert.True(t, IsInvalidConfigError(err))
	}
}

func TestPromotion_RejectsEmptyName(t *testing.T) {
	_, err := NewSecondHalfPrice("")
	assert.True(t, IsInvalidConfigError(err))

	_, err = NewThirdOneFree("")
	assert.True(t, IsInvalidConfigError(err))

	_, err = NewPercentDiscount("", 30)
	assert.True(t, IsInvalidConfigError(err))
}

func TestPromotion_ApplyIsPure(t *testing.T) {
	promo, err := NewThirdOneFree("Third One Free!")
	require.NoError(t, err)

	first := promo.Apply(250, 9)
	second := promo.Apply(250, 9)
	assert.Equal(t, first, second)
}
