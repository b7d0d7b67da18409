// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"runtime"
)

// ErrNoPairs indicates there are no entries to take the median of
// (a 1×1 matrix with the diagonal excluded).
var ErrNoPairs = errors.New("distance: no pairwise distances")

// options configures Euclidean.
type options struct {
	workers int
}

// Option configures Euclidean.
type Option func(*options)

// WithWorkers bounds the number of goroutines computing rows.
// Values below 1 fall back to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

func defaultOptions() options {
	return options{workers: runtime.GOMAXPROCS(0)}
}
