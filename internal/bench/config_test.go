// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench_test

import (
	"math"
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/ringbuf/internal/bench"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := bench.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Size != 1024 {
		t.Fatalf("Size: got %d, want 1024", cfg.Size)
	}
	if len(cfg.Throughput) != 5 || len(cfg.Latency) != 3 {
		t.Fatalf("cases: got %d throughput, %d latency; want 5, 3", len(cfg.Throughput), len(cfg.Latency))
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*bench.Config)
		want   string
	}{
		{"small ring", func(c *bench.Config) { c.Size = 1 }, "ring size"},
		{"huge ring", func(c *bench.Config) { c.Size = math.MaxInt }, "ring size"},
		{"ring above max", func(c *bench.Config) { c.Size = bench.MaxRingSize + 1 }, "ring size"},
		{"zero scale", func(c *bench.Config) { c.Scale = 0 }, "scale"},
		{"bad policy", func(c *bench.Config) { c.Wait = "sleep" }, "wait policy"},
		{"bad stage", func(c *bench.Config) { c.Only = []bench.Stage{"warmup"} }, "unknown stage"},
		{
			// Would retry forever: the ring can never hold 512 bytes
			"message exceeds cap",
			func(c *bench.Config) { c.Size = 512 },
			"throughput message size 512 outside [1, 511]",
		},
		{
			"latency message too short",
			func(c *bench.Config) { c.Latency = []bench.LatencyCase{{MsgSize: 4, Samples: 10}} },
			"latency message size 4",
		},
		{
			"zero ops",
			func(c *bench.Config) { c.ContentionOps = 0 },
			"contention count 0",
		},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			cfg := bench.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate: got nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate: got %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestValidateSkipsDisabledStages(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Size = 64 // too small for the default throughput and latency cases
	cfg.Only = []bench.Stage{bench.StageBaseline, bench.StageContention}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRingCapBounds(t *testing.T) {
	tests := []struct {
		size, msgSize int
		ok            bool
	}{
		{2, 1, true},
		{2, 2, false},
		{1000, 1023, true}, // rounds up to 1024
		{1000, 1024, false},
		{1024, 1023, true},
		{1025, 2047, true},
		{bench.MaxRingSize, bench.MaxRingSize - 1, true},
		{bench.MaxRingSize, bench.MaxRingSize, false},
	}
	for _, tt := range tests {
		cfg := bench.DefaultConfig()
		cfg.Size = tt.size
		cfg.Only = []bench.Stage{bench.StageThroughput}
		cfg.Throughput = []bench.ThroughputCase{{MsgSize: tt.msgSize, Msgs: 1}}
		if err := cfg.Validate(); (err == nil) != tt.ok {
			t.Errorf("Validate(size=%d, msg=%d): got %v, want ok=%v", tt.size, tt.msgSize, err, tt.ok)
		}
	}
}

func TestParseStages(t *testing.T) {
	got, err := bench.ParseStages("latency, baseline")
	if err != nil {
		t.Fatalf("ParseStages: %v", err)
	}
	want := []bench.Stage{bench.StageLatency, bench.StageBaseline}
	if !slices.Equal(got, want) {
		t.Fatalf("ParseStages: got %v, want %v", got, want)
	}

	if got, err := bench.ParseStages(""); err != nil || got != nil {
		t.Fatalf("ParseStages(\"\"): got (%v, %v), want (nil, nil)", got, err)
	}
	if _, err := bench.ParseStages("baseline,bogus"); err == nil {
		t.Fatal("ParseStages(bogus): got nil error")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want bench.Policy
		ok   bool
	}{
		{"", bench.PolicySpin, true},
		{"spin", bench.PolicySpin, true},
		{"yield", bench.PolicyYield, true},
		{"backoff", bench.PolicyBackoff, true},
		{"sleep", "", false},
	}
	for _, tt := range tests {
		got, err := bench.ParsePolicy(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParsePolicy(%q): got (%q, %v), want %q ok=%v", tt.in, got, err, tt.want, tt.ok)
		}
	}
}
