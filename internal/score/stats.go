package score

import (
	"errors"
	"math"
)

var (
	// ErrEmptyDataset is returned when no rows survived numeric parsing.
	ErrEmptyDataset = errors.New("no numeric scores in dataset")
	// ErrZeroStdDev is returned when every score is identical, so z-scores
	// are undefined.
	ErrZeroStdDev = errors.New("score standard deviation is zero")
)

// Params are the distribution parameters of a score column, computed once
// per run and reused for both standardization and the fitted density curve.
type Params struct {
	Mean   float64
	StdDev float64
}

// MeanStdDev returns the arithmetic mean and population standard deviation
// (denominator N, not N-1). Returns (0, 0) for an empty slice.
func MeanStdDev(xs []float64) (mean, stddev float64) {
	n := len(xs)
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean = sum / float64(n)
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return mean, math.Sqrt(sumSq / float64(n))
}

// Standardize computes z = (x - mean) / stddev for every value, using
// population statistics over the whole slice. It fails loudly on degenerate
// input rather than emitting NaNs into downstream artifacts.
func Standardize(xs []float64) ([]float64, Params, error) {
	if len(xs) == 0 {
		return nil, Params{}, ErrEmptyDataset
	}
	mean, stddev := MeanStdDev(xs)
	if stddev == 0 {
		return nil, Params{Mean: mean}, ErrZeroStdDev
	}
	zs := make([]float64, len(xs))
	for i, x := range xs {
		zs[i] = (x - mean) / stddev
	}
	return zs, Params{Mean: mean, StdDev: stddev}, nil
}
