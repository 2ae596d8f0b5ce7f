package rt

import "fmt"

// Window is a span of the incidence series using 1-based inclusive
// indices. The estimate of a window is attributed to its End.
type Window struct {
	Start int
	End   int
}

// Len returns the number of days in the window.
func (w Window) Len() int {
	return w.End - w.Start + 1
}

// Windows returns the sliding windows of the given length for a series
// with n samples. The first window starts on the second day because
// the first day has no past infectiousness. Compute the windows once
// from the reference series and reuse them for every country.
func Windows(n, length int) ([]Window, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: window length must be positive", ErrInvalidParams)
	}
	if n < length+1 {
		return nil, fmt.Errorf("%w: %d samples with a %d days window", ErrTooShort, n, length)
	}
	out := make([]Window, 0, n-length)
	for start := 2; start <= n-length+1; start++ {
		out = append(out, Window{Start: start, End: start + length - 1})
	}
	return out, nil
}
