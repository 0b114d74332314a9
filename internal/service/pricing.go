package service

import "math"

// CalculateDiscount returns the integer discount percentage for a price pair.
// A missing original price, or one at or below the selling price, means no
// discount. The result is rounded to the nearest whole percent.
func CalculateDiscount(price float64, originalPrice *float64) int {
	if originalPrice == nil || *originalPrice <= price {
		return 0
	}
	return int(math.Round((1 - price / *originalPrice) * 100))
}
