// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench measures a ringbuf.Ring under single-producer
// single-consumer load.
//
// The suite has four stages, run in order:
//
//	baseline    one goroutine alternating 8-byte push and pop
//	throughput  producer and consumer goroutines, fixed message sizes
//	latency     per-message send-to-receive time distribution
//	contention  retry counts on both sides under saturation
//
// Producer and consumer run on locked OS threads, optionally pinned to
// CPUs. Retry on a failed push or pop follows the configured [Policy].
//
// The harness only uses the ring's Push/Pop contract. It never issues a
// request larger than the ring's usable capacity: such a request would
// fail forever and the retry loop would never end. [Config.Validate]
// rejects those configurations up front.
package bench
