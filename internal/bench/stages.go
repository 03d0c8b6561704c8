// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/ringbuf"
	"code.hybscloud.com/spin"
)

const (
	baselineMsgSize = 8
	seqSize         = 8

	// Pause hints issued by the latency producer between sends so the
	// consumer is usually waiting when a message lands.
	paceSpins = 4
)

// BaselineResult is the single-goroutine push+pop cost.
type BaselineResult struct {
	Ops        int           `json:"ops"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	NsPerPair  float64       `json:"ns_per_pair"`
	MOpsPerSec float64       `json:"mops_per_sec"`
}

// ThroughputResult is one SPSC streaming run.
type ThroughputResult struct {
	MsgSize    int           `json:"msg_size"`
	Msgs       int           `json:"msgs"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	MsgsPerSec float64       `json:"msgs_per_sec"`
	MBPerSec   float64       `json:"mb_per_sec"`
	NsPerMsg   float64       `json:"ns_per_msg"`
}

// LatencyResult is one send-to-receive latency run.
type LatencyResult struct {
	MsgSize int `json:"msg_size"`
	Distribution
}

// ContentionResult counts failed attempts on each side.
type ContentionResult struct {
	Ops          int           `json:"ops"`
	MsgSize      int           `json:"msg_size"`
	Elapsed      time.Duration `json:"elapsed_ns"`
	PushRetries  uint64        `json:"push_retries"`
	PopRetries   uint64        `json:"pop_retries"`
	PushRetryPct float64       `json:"push_retry_pct"`
	PopRetryPct  float64       `json:"pop_retry_pct"`
}

// Baseline alternates an 8-byte push and pop on one goroutine. Every call
// succeeds, so it measures the uncontended cost of the protocol.
func Baseline(cfg *Config) BaselineResult {
	r := ringbuf.New(cfg.Size)
	ops := cfg.scaled(cfg.BaselineOps)
	var in, out [baselineMsgSize]byte

	start := time.Now()
	for range ops {
		r.Push(in[:])
		r.Pop(out[:])
	}
	elapsed := time.Since(start)

	res := BaselineResult{Ops: ops, Elapsed: elapsed}
	if elapsed > 0 {
		res.NsPerPair = float64(elapsed.Nanoseconds()) / float64(ops)
		res.MOpsPerSec = perSecond(2*float64(ops), elapsed) / 1e6
	}
	return res
}

// Throughput streams tc.Msgs messages of tc.MsgSize bytes from a producer
// thread to a consumer thread.
func Throughput(cfg *Config, tc ThroughputCase) (ThroughputResult, error) {
	r := ringbuf.New(cfg.Size)
	msgs := cfg.scaled(tc.Msgs)

	start := time.Now()
	err := cfg.pair(
		func() {
			w := newWaiter(cfg.Wait)
			data := make([]byte, tc.MsgSize)
			for range msgs {
				for !r.Push(data) {
					w.Wait()
				}
				w.Reset()
			}
		},
		func() {
			w := newWaiter(cfg.Wait)
			data := make([]byte, tc.MsgSize)
			for range msgs {
				for !r.Pop(data) {
					w.Wait()
				}
				w.Reset()
			}
		},
	)
	elapsed := time.Since(start)

	res := ThroughputResult{MsgSize: tc.MsgSize, Msgs: msgs, Elapsed: elapsed}
	if elapsed > 0 {
		res.MsgsPerSec = perSecond(float64(msgs), elapsed)
		res.MBPerSec = res.MsgsPerSec * float64(tc.MsgSize) / (1024 * 1024)
		res.NsPerMsg = float64(elapsed.Nanoseconds()) / float64(msgs)
	}
	return res, err
}

// Latency measures the time from just before a push to just after the
// matching pop. The consumer announces readiness first and checks the
// sequence number carried in each message.
func Latency(cfg *Config, lc LatencyCase) (LatencyResult, error) {
	r := ringbuf.New(cfg.Size)
	n := cfg.scaled(lc.Samples)
	send := make([]time.Duration, n)
	recv := make([]time.Duration, n)
	var ready atomix.Bool
	var seqErr error

	epoch := time.Now()
	err := cfg.pair(
		func() {
			w := newWaiter(cfg.Wait)
			pace := spin.Wait{}
			data := make([]byte, lc.MsgSize)
			for !ready.Load() {
				runtime.Gosched()
			}
			for i := range n {
				send[i] = time.Since(epoch)
				binary.LittleEndian.PutUint64(data, uint64(i))
				for !r.Push(data) {
					w.Wait()
				}
				w.Reset()
				for range paceSpins {
					pace.Once()
				}
				pace.Reset()
			}
		},
		func() {
			w := newWaiter(cfg.Wait)
			data := make([]byte, lc.MsgSize)
			ready.Store(true)
			for i := range n {
				for !r.Pop(data) {
					w.Wait()
				}
				recv[i] = time.Since(epoch)
				w.Reset()
				if got := binary.LittleEndian.Uint64(data); got != uint64(i) && seqErr == nil {
					seqErr = fmt.Errorf("bench: latency sample %d carried sequence %d", i, got)
				}
			}
		},
	)
	if err == nil {
		err = seqErr
	}

	for i := range send {
		send[i] = recv[i] - send[i]
	}
	return LatencyResult{MsgSize: lc.MsgSize, Distribution: Summarize(send)}, err
}

// Contention saturates the ring from both sides and counts every failed
// push and pop.
func Contention(cfg *Config) (ContentionResult, error) {
	r := ringbuf.New(cfg.Size)
	ops := cfg.scaled(cfg.ContentionOps)
	size := cfg.ContentionMsgSize
	var pushFails, popFails atomix.Uint64

	start := time.Now()
	err := cfg.pair(
		func() {
			w := newWaiter(cfg.Wait)
			data := make([]byte, size)
			for range ops {
				for !r.Push(data) {
					pushFails.Add(1)
					w.Wait()
				}
				w.Reset()
			}
		},
		func() {
			w := newWaiter(cfg.Wait)
			data := make([]byte, size)
			for range ops {
				for !r.Pop(data) {
					popFails.Add(1)
					w.Wait()
				}
				w.Reset()
			}
		},
	)
	elapsed := time.Since(start)

	res := ContentionResult{
		Ops:         ops,
		MsgSize:     size,
		Elapsed:     elapsed,
		PushRetries: pushFails.Load(),
		PopRetries:  popFails.Load(),
	}
	res.PushRetryPct = 100 * float64(res.PushRetries) / float64(ops)
	res.PopRetryPct = 100 * float64(res.PopRetries) / float64(ops)
	return res, err
}
