package targetsetter

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidBPIInput = errors.New("invalid backlog per instance input")

// AverageDuration is the arithmetic mean of the finite values together with
// how many of them were averaged. It returns fallback, true when there is
// nothing usable to average or the mean is not positive.
func AverageDuration(values []float64, fallback float64) (float64, int, bool) {
	var sum float64
	count := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return fallback, 0, true
	}
	avg := sum / float64(count)
	if avg <= 0 || math.IsInf(avg, 0) {
		return fallback, count, true
	}
	return avg, count, false
}

// ComputeTargetBPI is the number of messages one instance can hold in its
// backlog and still drain within desiredLatency, truncated and never below 1.
func ComputeTargetBPI(desiredLatency, avgDuration float64) (int64, error) {
	if !(desiredLatency > 0) || math.IsInf(desiredLatency, 0) {
		return 0, fmt.Errorf("%w: desired latency %v must be positive", ErrInvalidBPIInput, desiredLatency)
	}
	if !(avgDuration > 0) || math.IsInf(avgDuration, 0) {
		return 0, fmt.Errorf("%w: average duration %v must be positive", ErrInvalidBPIInput, avgDuration)
	}
	ratio := desiredLatency / avgDuration
	if ratio >= math.MaxInt64 {
		return math.MaxInt64, nil
	}
	return max(int64(ratio), 1), nil
}
