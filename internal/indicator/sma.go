package indicator

import "math"

// SMA computes the simple moving average of values over the trailing period.
// Entries before the window fills are NaN, and a NaN anywhere inside the
// window makes that entry NaN as well, so gaps propagate instead of skewing
// the average.
func SMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	if period <= 0 || len(values) < period {
		return out
	}
	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		valid := true
		for j := i - period + 1; j <= i; j++ {
			if math.IsNaN(values[j]) {
				valid = false
				break
			}
			sum += values[j]
		}
		if valid {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// Last returns the final entry of a series and whether it is available.
func Last(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	v := values[len(values)-1]
	return v, !math.IsNaN(v)
}

// At returns the entry offset bars back from the end and whether it is
// available. At(values, 0) is the latest entry.
func At(values []float64, offset int) (float64, bool) {
	i := len(values) - 1 - offset
	if i < 0 {
		return 0, false
	}
	v := values[i]
	return v, !math.IsNaN(v)
}
