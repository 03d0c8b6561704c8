// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"context"
	"fmt"

	"code.hybscloud.com/ringbuf"
)

// Report collects the results of one suite run. Stages that did not run
// are nil or empty.
type Report struct {
	Size       int                `json:"size"`
	Cap        int                `json:"cap"`
	Wait       Policy             `json:"wait"`
	Baseline   *BaselineResult    `json:"baseline,omitempty"`
	Throughput []ThroughputResult `json:"throughput,omitempty"`
	Latency    []LatencyResult    `json:"latency,omitempty"`
	Contention *ContentionResult  `json:"contention,omitempty"`
}

// Run validates cfg and runs the enabled stages in order. ctx is checked
// between runs; a run in progress always completes. On error the partial
// report is returned with it.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Wait, _ = ParsePolicy(string(cfg.Wait))

	r := ringbuf.New(cfg.Size)
	rep := &Report{Size: r.Size(), Cap: r.Cap(), Wait: cfg.Wait}

	if cfg.enabled(StageBaseline) {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		res := Baseline(&cfg)
		rep.Baseline = &res
	}

	if cfg.enabled(StageThroughput) {
		for _, tc := range cfg.Throughput {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			res, err := Throughput(&cfg, tc)
			if err != nil {
				return rep, fmt.Errorf("bench: throughput %dB: %w", tc.MsgSize, err)
			}
			rep.Throughput = append(rep.Throughput, res)
		}
	}

	if cfg.enabled(StageLatency) {
		for _, lc := range cfg.Latency {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			res, err := Latency(&cfg, lc)
			if err != nil {
				return rep, fmt.Errorf("bench: latency %dB: %w", lc.MsgSize, err)
			}
			rep.Latency = append(rep.Latency, res)
		}
	}

	if cfg.enabled(StageContention) {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		res, err := Contention(&cfg)
		if err != nil {
			return rep, fmt.Errorf("bench: contention: %w", err)
		}
		rep.Contention = &res
	}

	return rep, nil
}
