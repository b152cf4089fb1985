package pricing

import "math"

// Exponent is the power mean exponent. Being strongly negative, it pulls the mean towards the
// lowest quotes.
const Exponent = -3.0

// PowerMean returns (Σ vᵖ / n)^(1/p) with p = Exponent, or nil for no values.
// Every value must be strictly positive. A single value is returned unchanged.
// Values are scaled by their minimum so the result stays within [min, max] for any magnitude.
func PowerMean(values []float64) *float64 {
	switch len(values) {
	case 0:
		return nil
	case 1:
		v := values[0]
		return &v
	}

	lo := values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
	}

	// Every ratio is >= 1, so each term lies in (0, 1] and the sum in (0, n].
	var sum float64
	for _, v := range values {
		sum += math.Pow(v/lo, Exponent)
	}
	mean := lo * math.Pow(sum/float64(len(values)), 1/Exponent)
	return &mean
}
