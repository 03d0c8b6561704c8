// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"code.hybscloud.com/ringbuf"
)

// MaxRingSize is the largest Config.Size Validate accepts.
const MaxRingSize = 1 << 30

// Stage names one part of the suite.
type Stage string

const (
	StageBaseline   Stage = "baseline"
	StageThroughput Stage = "throughput"
	StageLatency    Stage = "latency"
	StageContention Stage = "contention"
)

// Stages lists every stage in run order.
var Stages = []Stage{StageBaseline, StageThroughput, StageLatency, StageContention}

// ThroughputCase is one throughput run.
type ThroughputCase struct {
	MsgSize int
	Msgs    int
}

// LatencyCase is one latency run. MsgSize must be at least 8: the first
// 8 bytes carry the sequence number.
type LatencyCase struct {
	MsgSize int
	Samples int
}

// Config configures a suite run.
type Config struct {
	// Ring storage size in bytes, rounded up to a power of 2
	Size int

	// Divides every message, sample, and op count (minimum 1 each)
	Scale int

	// Retry policy on a failed push or pop
	Wait Policy

	// CPUs for the producer and consumer threads; negative disables pinning
	ProducerCPU int
	ConsumerCPU int

	BaselineOps       int
	Throughput        []ThroughputCase
	Latency           []LatencyCase
	ContentionOps     int
	ContentionMsgSize int

	// Stages to run; empty runs all
	Only []Stage
}

// DefaultConfig returns the full suite: a 1024-byte ring, spin-wait
// retries, no pinning.
func DefaultConfig() Config {
	return Config{
		Size:        ringbuf.DefaultSize,
		Scale:       1,
		Wait:        PolicySpin,
		ProducerCPU: -1,
		ConsumerCPU: -1,
		BaselineOps: 10_000_000,
		Throughput: []ThroughputCase{
			{MsgSize: 1, Msgs: 10_000_000},
			{MsgSize: 8, Msgs: 10_000_000},
			{MsgSize: 64, Msgs: 5_000_000},
			{MsgSize: 256, Msgs: 2_000_000},
			{MsgSize: 512, Msgs: 1_000_000},
		},
		Latency: []LatencyCase{
			{MsgSize: 8, Samples: 100_000},
			{MsgSize: 64, Samples: 100_000},
			{MsgSize: 256, Samples: 50_000},
		},
		ContentionOps:     10_000_000,
		ContentionMsgSize: 8,
	}
}

// ParseStages parses a comma-separated stage list.
func ParseStages(s string) ([]Stage, error) {
	if s == "" {
		return nil, nil
	}
	var out []Stage
	for name := range strings.SplitSeq(s, ",") {
		st := Stage(strings.TrimSpace(name))
		if !st.valid() {
			return nil, fmt.Errorf("bench: unknown stage %q", name)
		}
		out = append(out, st)
	}
	return out, nil
}

func (s Stage) valid() bool {
	for _, st := range Stages {
		if s == st {
			return true
		}
	}
	return false
}

// enabled reports whether stage s should run.
func (c *Config) enabled(s Stage) bool {
	if len(c.Only) == 0 {
		return true
	}
	for _, st := range c.Only {
		if st == s {
			return true
		}
	}
	return false
}

// scaled divides n by Scale, keeping at least 1.
func (c *Config) scaled(n int) int {
	if c.Scale > 1 {
		n /= c.Scale
	}
	return max(n, 1)
}

// Validate checks that every run can complete on a ring of c.Size.
func (c *Config) Validate() error {
	if c.Size < 2 || c.Size > MaxRingSize {
		return fmt.Errorf("bench: ring size %d outside [2, %d]", c.Size, MaxRingSize)
	}
	if c.Scale < 1 {
		return fmt.Errorf("bench: scale %d, want >= 1", c.Scale)
	}
	if _, err := ParsePolicy(string(c.Wait)); err != nil {
		return err
	}
	for _, st := range c.Only {
		if !st.valid() {
			return fmt.Errorf("bench: unknown stage %q", st)
		}
	}

	limit := ringCap(c.Size)
	var errs []error
	checkSize := func(what string, size, minSize int) {
		if size < minSize || size > limit {
			errs = append(errs, fmt.Errorf("bench: %s message size %d outside [%d, %d]", what, size, minSize, limit))
		}
	}
	checkCount := func(what string, n int) {
		if n < 1 {
			errs = append(errs, fmt.Errorf("bench: %s count %d, want >= 1", what, n))
		}
	}

	if c.enabled(StageBaseline) {
		checkSize("baseline", baselineMsgSize, 1)
		checkCount("baseline", c.BaselineOps)
	}
	if c.enabled(StageThroughput) {
		for _, tc := range c.Throughput {
			checkSize("throughput", tc.MsgSize, 1)
			checkCount("throughput", tc.Msgs)
		}
	}
	if c.enabled(StageLatency) {
		for _, lc := range c.Latency {
			checkSize("latency", lc.MsgSize, seqSize)
			checkCount("latency", lc.Samples)
		}
	}
	if c.enabled(StageContention) {
		checkSize("contention", c.ContentionMsgSize, 1)
		checkCount("contention", c.ContentionOps)
	}
	return errors.Join(errs...)
}

// ringCap returns the usable capacity of ringbuf.New(size) without
// allocating it. size must be in [2, MaxRingSize].
func ringCap(size int) int {
	return 1<<bits.Len(uint(size-1)) - 1
}
