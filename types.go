// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

// Buffer is the combined producer-consumer interface of a byte ring.
//
// The interface excludes length: a snapshot is stale as soon as the other
// side moves its cursor. Use [Ring.Len] and [Ring.Free] for diagnostics.
type Buffer interface {
	Producer
	Consumer
	Cap() int
}

// Producer is the write side of a byte ring.
type Producer interface {
	// Push copies all of p into the ring, or nothing.
	// Returns false if the free space is smaller than len(p).
	Push(p []byte) bool
}

// Consumer is the read side of a byte ring.
type Consumer interface {
	// Pop fills all of p from the ring, or consumes nothing.
	// Returns false if fewer than len(p) bytes are buffered.
	Pop(p []byte) bool
}

var _ Buffer = (*Ring)(nil)
