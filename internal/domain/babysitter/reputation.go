package babysitter

// RecomputeReputation returns the arithmetic mean of all review ratings
// for a babysitter's services. With no reviews the prior value is kept:
// an empty history says nothing, so it must not reset the score or
// divide by zero.
func RecomputeReputation(prior float64, ratings []int) float64 {
	if len(ratings) == 0 {
		return prior
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
