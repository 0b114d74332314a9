package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDiscount(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	t.Run("no original price means no discount", func(t *testing.T) {
		assert.Equal(t, 0, CalculateDiscount(100, nil))
	})

	t.Run("equal prices mean no discount", func(t *testing.T) {
		assert.Equal(t, 0, CalculateDiscount(100, ptr(100)))
	})

	t.Run("original below selling price means no discount", func(t *testing.T) {
		assert.Equal(t, 0, CalculateDiscount(100, ptr(80)))
	})

	t.Run("computes percentage off", func(t *testing.T) {
		assert.Equal(t, 20, CalculateDiscount(80, ptr(100)))
	})

	t.Run("rounds to nearest whole percent", func(t *testing.T) {
		assert.Equal(t, 33, CalculateDiscount(66.67, ptr(100)))
	})

	t.Run("seed catalog promo pair", func(t *testing.T) {
		assert.Equal(t, 25, CalculateDiscount(89.9, ptr(119.9)))
	})
}
