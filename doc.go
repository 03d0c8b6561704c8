// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringbuf provides a bounded single-producer single-consumer byte
// ring buffer.
//
// One goroutine pushes bytes, one other goroutine pops them. Neither side
// takes a lock or issues a compare-and-swap: the producer publishes with a
// release store of the write cursor after copying, and the consumer
// acquires that cursor before copying out. The consumer releases the read
// cursor symmetrically so the producer may reuse freed bytes.
//
// # Quick Start
//
//	r := ringbuf.New(1024)
//
//	// Producer
//	if !r.Push(payload) {
//	    // Not enough free space yet - retry later
//	}
//
//	// Consumer
//	out := make([]byte, len(payload))
//	if !r.Pop(out) {
//	    // Not enough bytes yet - retry later
//	}
//
// # Semantics
//
// Push and Pop are all-or-nothing and never block. A failed call changes
// nothing and may be retried. Empty slices always succeed and do nothing.
//
// Size rounds up to the next power of 2 and one byte is reserved to tell
// empty from full, so usable capacity is Size()-1:
//
//	r := ringbuf.New(1000) // Size 1024, Cap 1023
//	r.Push(make([]byte, 1023)) // true
//	r.Push(make([]byte, 1))    // false until the consumer pops
//
// A request larger than Cap() is reported exactly like a transient
// failure. It will never succeed, so a retry loop around it never ends.
// Callers bound request sizes themselves.
//
// # Retry Policy
//
// Waiting is the caller's choice. Spin, yield, or back off:
//
//	backoff := iox.Backoff{}
//	for !r.Push(msg) {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// The error-returning forms Write and Read report [ErrWouldBlock] for
// callers composing with [code.hybscloud.com/iox]:
//
//	if _, err := r.Write(msg); ringbuf.IsWouldBlock(err) {
//	    // Backpressure
//	}
//
// # Framing
//
// The ring moves bytes, not messages. Recovering message boundaries
// (length prefixes, fixed-size records) is up to the caller:
//
//	var hdr [4]byte
//	binary.LittleEndian.PutUint32(hdr[:], uint32(len(msg)))
//	// Push header and body in one call so the consumer never sees half
//	frame := append(hdr[:], msg...)
//	for !r.Push(frame) {
//	    sw.Once()
//	}
//
// # Thread Safety
//
// Exactly one producer goroutine may call Push or Write, and exactly one
// consumer goroutine may call Pop or Read, for the ring's lifetime.
// Violating this causes undefined behavior including data corruption.
//
// # Race Detection
//
// The race detector tracks explicit synchronization primitives but not
// happens-before edges built from acquire-release orderings on separate
// variables. Payload bytes here are plain memory published by the cursor
// store, so concurrent tests are skipped when [RaceEnabled] is set.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic cursors with
// explicit memory ordering and [code.hybscloud.com/iox] for semantic errors.
package ringbuf
