package stats

import "math"

// WelchTTest computes Welch's t-statistic and its Welch-Satterthwaite degrees
// of freedom for two independent series. Unlike NewSummary it uses the sample
// variance (divisor n-1) for each series; the two formulas are intentionally
// distinct. The regression comparator does not call this; it is an auxiliary
// primitive for callers who want statistical confidence instead of a raw
// percent threshold.
func WelchTTest(a, b []float64) (t, df float64) {
	n1 := float64(len(a))
	n2 := float64(len(b))

	mean1 := meanOf(a)
	mean2 := meanOf(b)

	var1 := sampleVariance(a, mean1)
	var2 := sampleVariance(b, mean2)

	se1 := var1 / n1
	se2 := var2 / n2

	t = (mean1 - mean2) / math.Sqrt(se1+se2)
	df = (se1 + se2) * (se1 + se2) /
		(se1*se1/(n1-1) + se2*se2/(n2-1))
	return t, df
}

// CoefficientOfVariation returns the population standard deviation divided by
// the mean, as a percentage.
func CoefficientOfVariation(values []float64) float64 {
	mean := meanOf(values)
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance) / mean * 100
}

func meanOf(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sampleVariance(values []float64, mean float64) float64 {
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / (float64(len(values)) - 1)
}
