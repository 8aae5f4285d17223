package analytics

import (
	"math"

	"github.com/Stuti0916/SymMuse/internal/models"
)

// Pearson computes the product-moment correlation coefficient.
// It returns 0 for mismatched or empty inputs and when either series has no
// variance, so 0 means "no relationship or undefined".
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	meanX := mean(x)
	meanY := mean(y)

	var numerator, denomX, denomY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		numerator += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	if denomX == 0 || denomY == 0 {
		return 0
	}

	r := numerator / math.Sqrt(denomX*denomY)
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// GroupedAverage buckets records by key and averages value per bucket.
// Records for which either func reports false are skipped; empty buckets
// never appear in the result.
func GroupedAverage[T any](records []T, key func(T) (string, bool), value func(T) (float64, bool)) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, r := range records {
		k, ok := key(r)
		if !ok {
			continue
		}
		v, ok := value(r)
		if !ok {
			continue
		}
		sums[k] += v
		counts[k]++
	}

	averages := make(map[string]float64, len(sums))
	for k, sum := range sums {
		averages[k] = sum / float64(counts[k])
	}
	return averages
}

// HalfVsHalfTrend compares the mean of the later half of an ordered series
// with the earlier half. The split point is floor(n/2), so for odd lengths
// the later half holds the extra element. Series shorter than two values are
// reported as stable.
func HalfVsHalfTrend(values []float64) models.Trend {
	if len(values) < 2 {
		return models.Trend{Direction: models.DirectionStable}
	}

	split := len(values) / 2
	firstAvg := mean(values[:split])
	secondAvg := mean(values[split:])
	change := secondAvg - firstAvg

	direction := models.DirectionStable
	if change > 0 {
		direction = models.DirectionIncreasing
	} else if change < 0 {
		direction = models.DirectionDecreasing
	}

	percentage := 0.0
	if firstAvg != 0 {
		percentage = change / firstAvg * 100
	}

	return models.Trend{
		Direction:  direction,
		Change:     math.Abs(change),
		Percentage: percentage,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// roundTo rounds v to the given number of decimal places
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
