package numberutils

import "math"

// MinFloat64 returns the minimum value from a list of floats.
// It returns +Inf when called without values.
func MinFloat64(nums ...float64) float64 {
	minVal := math.Inf(1)
	for _, num := range nums {
		if num < minVal {
			minVal = num
		}
	}
	return minVal
}

// MaxFloat64 returns the maximum value from a list of floats.
// It returns -Inf when called without values.
func MaxFloat64(nums ...float64) float64 {
	maxVal := math.Inf(-1)
	for _, num := range nums {
		if num > maxVal {
			maxVal = num
		}
	}
	return maxVal
}

// SumFloat64 returns the sum of a list of floats.
func SumFloat64(nums ...float64) float64 {
	var sum float64
	for _, num := range nums {
		sum += num
	}
	return sum
}

// AverageFloat64 returns the arithmetic mean of a list of floats.
// It returns NaN when called without values, callers must guard the empty case.
func AverageFloat64(nums ...float64) float64 {
	if len(nums) == 0 {
		return math.NaN()
	}
	return SumFloat64(nums...) / float64(len(nums))
}
