// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"
)

const rule = "==================================="

// WriteText renders rep as a human-readable table.
func (rep *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Ring Buffer Performance Benchmarks\n%s\n", rule)
	fmt.Fprintf(bw, "ring: %d bytes (%d usable), wait: %s\n", rep.Size, rep.Cap, rep.Wait)

	if b := rep.Baseline; b != nil {
		fmt.Fprintf(bw, "\nSingle-threaded baseline:\n")
		fmt.Fprintf(bw, "  %d push+pop pairs:\n", b.Ops)
		fmt.Fprintf(bw, "    Total time: %.3f ms\n", millis(b.Elapsed.Nanoseconds()))
		fmt.Fprintf(bw, "    %.1f ns per push+pop pair\n", b.NsPerPair)
		fmt.Fprintf(bw, "    %.2f M ops/sec\n", b.MOpsPerSec)
	}

	if len(rep.Throughput) > 0 {
		fmt.Fprintf(bw, "\nThroughput (SPSC, %s):\n", rep.Wait)
		for _, t := range rep.Throughput {
			fmt.Fprintf(bw, "  %3d bytes x %8d msgs: %10.2f msg/s  %7.2f MB/s  %6.1f ns/msg\n",
				t.MsgSize, t.Msgs, t.MsgsPerSec, t.MBPerSec, t.NsPerMsg)
		}
	}

	if len(rep.Latency) > 0 {
		fmt.Fprintf(bw, "\nLatency distribution (SPSC):\n")
		for _, l := range rep.Latency {
			fmt.Fprintf(bw, "  %3d bytes (%d samples):\n", l.MsgSize, l.Samples)
			fmt.Fprintf(bw, "    min: %5d ns  p50: %5d ns  p90: %5d ns  p99: %5d ns  p99.9: %5d ns  max: %6d ns  mean: %.1f ns\n",
				l.Min.Nanoseconds(), l.P50.Nanoseconds(), l.P90.Nanoseconds(),
				l.P99.Nanoseconds(), l.P999.Nanoseconds(), l.Max.Nanoseconds(), l.Mean)
		}
	}

	if c := rep.Contention; c != nil {
		fmt.Fprintf(bw, "\nContention analysis:\n")
		fmt.Fprintf(bw, "  %d ops, %d byte messages:\n", c.Ops, c.MsgSize)
		fmt.Fprintf(bw, "    Total time: %.3f ms\n", millis(c.Elapsed.Nanoseconds()))
		fmt.Fprintf(bw, "    Push retries: %d (%.4f%%)\n", c.PushRetries, c.PushRetryPct)
		fmt.Fprintf(bw, "    Pop retries: %d (%.4f%%)\n", c.PopRetries, c.PopRetryPct)
	}

	fmt.Fprintf(bw, "\n%s\nBenchmark complete.\n", rule)
	return bw.Flush()
}

// WriteJSON writes rep as a single JSON object followed by a newline.
func (rep *Report) WriteJSON(w io.Writer) error {
	data, err := sonnet.Marshal(rep)
	if err != nil {
		return fmt.Errorf("bench: encode report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func millis(ns int64) float64 {
	return float64(ns) / 1e6
}
