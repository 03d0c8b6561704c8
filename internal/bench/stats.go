// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"slices"
	"time"
)

// Distribution summarizes a set of latency samples.
//
// Percentile p is the sample at index n*p/100 of the sorted set.
type Distribution struct {
	Samples int           `json:"samples"`
	Min     time.Duration `json:"min_ns"`
	P50     time.Duration `json:"p50_ns"`
	P90     time.Duration `json:"p90_ns"`
	P99     time.Duration `json:"p99_ns"`
	P999    time.Duration `json:"p999_ns"`
	Max     time.Duration `json:"max_ns"`
	Mean    float64       `json:"mean_ns"`
}

// Summarize sorts samples in place and returns their distribution.
// An empty set yields the zero Distribution.
func Summarize(samples []time.Duration) Distribution {
	n := len(samples)
	if n == 0 {
		return Distribution{}
	}
	slices.Sort(samples)

	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}
	return Distribution{
		Samples: n,
		Min:     samples[0],
		P50:     samples[n/2],
		P90:     samples[n*90/100],
		P99:     samples[n*99/100],
		P999:    samples[n*999/1000],
		Max:     samples[n-1],
		Mean:    sum / float64(n),
	}
}
