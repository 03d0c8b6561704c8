// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"code.hybscloud.com/ringbuf"
	"code.hybscloud.com/ringbuf/internal/bench"
	"github.com/sugawarayuuta/sonnet"
)

// quickConfig scales the default suite down to a few thousand messages.
func quickConfig(p bench.Policy) bench.Config {
	cfg := bench.DefaultConfig()
	cfg.Scale = 1000
	cfg.Wait = p
	return cfg
}

func TestBaseline(t *testing.T) {
	cfg := quickConfig(bench.PolicySpin)
	res := bench.Baseline(&cfg)
	if res.Ops != 10_000 {
		t.Fatalf("Ops: got %d, want 10000", res.Ops)
	}
	if res.Elapsed <= 0 {
		t.Fatalf("Elapsed: got %v, want > 0", res.Elapsed)
	}
}

func TestStagesPerPolicy(t *testing.T) {
	if ringbuf.RaceEnabled {
		t.Skip("skip: payload is published through acquire-release cursors")
	}

	for _, p := range []bench.Policy{bench.PolicySpin, bench.PolicyYield, bench.PolicyBackoff} {
		t.Run(string(p), func(t *testing.T) {
			cfg := quickConfig(p)

			tr, err := bench.Throughput(&cfg, bench.ThroughputCase{MsgSize: 64, Msgs: 5_000_000})
			if err != nil {
				t.Fatalf("Throughput: %v", err)
			}
			if tr.Msgs != 5_000 || tr.MsgSize != 64 {
				t.Fatalf("Throughput: got %d x %dB, want 5000 x 64B", tr.Msgs, tr.MsgSize)
			}

			lr, err := bench.Latency(&cfg, bench.LatencyCase{MsgSize: 8, Samples: 100_000})
			if err != nil {
				t.Fatalf("Latency: %v", err)
			}
			if lr.Samples != 100 {
				t.Fatalf("Latency samples: got %d, want 100", lr.Samples)
			}
			if lr.Min < 0 || lr.Min > lr.P50 || lr.P50 > lr.Max {
				t.Fatalf("Latency: unordered distribution %+v", lr.Distribution)
			}

			cr, err := bench.Contention(&cfg)
			if err != nil {
				t.Fatalf("Contention: %v", err)
			}
			if cr.Ops != 10_000 || cr.MsgSize != 8 {
				t.Fatalf("Contention: got %d ops x %dB, want 10000 x 8B", cr.Ops, cr.MsgSize)
			}
		})
	}
}

func TestRunReport(t *testing.T) {
	if ringbuf.RaceEnabled {
		t.Skip("skip: payload is published through acquire-release cursors")
	}

	rep, err := bench.Run(context.Background(), quickConfig(bench.PolicySpin))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Size != 1024 || rep.Cap != 1023 {
		t.Fatalf("Run: got size %d cap %d, want 1024 1023", rep.Size, rep.Cap)
	}
	if rep.Baseline == nil || rep.Contention == nil {
		t.Fatal("Run: missing baseline or contention result")
	}
	if len(rep.Throughput) != 5 || len(rep.Latency) != 3 {
		t.Fatalf("Run: got %d throughput, %d latency; want 5, 3", len(rep.Throughput), len(rep.Latency))
	}

	var text bytes.Buffer
	if err := rep.WriteText(&text); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	for _, want := range []string{
		"Single-threaded baseline:",
		"Throughput (SPSC, spin):",
		"Latency distribution (SPSC):",
		"Contention analysis:",
		"Benchmark complete.",
	} {
		if !strings.Contains(text.String(), want) {
			t.Errorf("WriteText: missing %q", want)
		}
	}

	var js bytes.Buffer
	if err := rep.WriteJSON(&js); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var decoded bench.Report
	if err := sonnet.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Wait != bench.PolicySpin || len(decoded.Latency) != 3 {
		t.Fatalf("decoded: got wait %q, %d latency", decoded.Wait, len(decoded.Latency))
	}
	if decoded.Latency[0].Samples != rep.Latency[0].Samples {
		t.Fatalf("decoded samples: got %d, want %d", decoded.Latency[0].Samples, rep.Latency[0].Samples)
	}
}

func TestRunOnlySelectedStages(t *testing.T) {
	cfg := quickConfig(bench.PolicySpin)
	cfg.Only = []bench.Stage{bench.StageBaseline}

	rep, err := bench.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Baseline == nil {
		t.Fatal("Run: missing baseline")
	}
	if rep.Throughput != nil || rep.Latency != nil || rep.Contention != nil {
		t.Fatal("Run: ran stages outside Only")
	}

	var text bytes.Buffer
	rep.WriteText(&text)
	if strings.Contains(text.String(), "Throughput") {
		t.Fatal("WriteText: rendered a stage that did not run")
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := bench.Run(ctx, quickConfig(bench.PolicySpin))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: got %v, want context.Canceled", err)
	}
	if rep == nil || rep.Baseline != nil {
		t.Fatalf("Run: got %+v, want empty partial report", rep)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := quickConfig(bench.PolicySpin)
	cfg.Size = 256

	rep, err := bench.Run(context.Background(), cfg)
	if err == nil {
		t.Fatal("Run: got nil error for oversized messages")
	}
	if rep != nil {
		t.Fatalf("Run: got report %+v, want nil", rep)
	}
}

func ExampleReport_WriteText() {
	rep := &bench.Report{
		Size: 1024,
		Cap:  1023,
		Wait: bench.PolicySpin,
		Throughput: []bench.ThroughputResult{
			{MsgSize: 8, Msgs: 1000, MsgsPerSec: 2e7, MBPerSec: 152.59, NsPerMsg: 50},
		},
	}
	var buf bytes.Buffer
	rep.WriteText(&buf)
	fmt.Print(buf.String())

	// Output:
	// Ring Buffer Performance Benchmarks
	// ===================================
	// ring: 1024 bytes (1023 usable), wait: spin
	//
	// Throughput (SPSC, spin):
	//     8 bytes x     1000 msgs: 20000000.00 msg/s   152.59 MB/s    50.0 ns/msg
	//
	// ===================================
	// Benchmark complete.
}
