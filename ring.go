// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import "code.hybscloud.com/atomix"

// Ring is a single-producer single-consumer bounded byte ring buffer.
//
// Lamport-style ring with masked cursors. The producer owns tail and the
// consumer owns head; each side loads its own cursor relaxed and the
// other side's cursor with acquire, and publishes with a release store
// after the bytes it covers have been copied.
//
// One slot stays unused so that head == tail always means empty.
// Usable capacity is Size()-1.
type Ring struct {
	_    pad
	head atomix.Uint64 // Read cursor, stored by the consumer only
	_    pad
	tail atomix.Uint64 // Write cursor, stored by the producer only
	_    pad
	buf  []byte
	mask uint64
}

// New creates a ring with size bytes of backing storage.
// Size rounds up to the next power of 2.
//
// Panics if size < 2 or size > MaxSize.
func New(size int) *Ring {
	if size < 2 {
		panic("ringbuf: size must be >= 2")
	}
	if size > MaxSize {
		panic("ringbuf: size exceeds MaxSize")
	}

	n := uint64(roundToPow2(size))
	return &Ring{
		buf:  make([]byte, n),
		mask: n - 1,
	}
}

// Push copies all of p into the ring (producer only).
//
// Push is all-or-nothing: it returns false without copying anything when
// len(p) exceeds the free space. A request larger than Cap() can never
// succeed and fails the same way. An empty p always succeeds.
func (r *Ring) Push(p []byte) bool {
	n := uint64(len(p))
	if n == 0 {
		return true
	}

	tail := r.tail.LoadRelaxed()
	head := r.head.LoadAcquire()
	if n > (head-tail-1)&r.mask {
		return false
	}

	// n <= mask, so the wrapped part never reaches tail.
	c := copy(r.buf[tail:], p)
	copy(r.buf, p[c:])
	r.tail.StoreRelease((tail + n) & r.mask)
	return true
}

// Pop fills all of p from the ring (consumer only).
//
// Pop is all-or-nothing: it returns false without consuming anything when
// len(p) exceeds the occupied bytes. An empty p always succeeds.
func (r *Ring) Pop(p []byte) bool {
	n := uint64(len(p))
	if n == 0 {
		return true
	}

	head := r.head.LoadRelaxed()
	tail := r.tail.LoadAcquire()
	if n > (tail-head)&r.mask {
		return false
	}

	c := copy(p, r.buf[head:])
	copy(p[c:], r.buf)
	r.head.StoreRelease((head + n) & r.mask)
	return true
}

// Write is Push with io.Writer-style results (producer only).
// Returns (len(p), nil) on success, (0, ErrWouldBlock) otherwise.
func (r *Ring) Write(p []byte) (int, error) {
	if !r.Push(p) {
		return 0, ErrWouldBlock
	}
	return len(p), nil
}

// Read is Pop with io.Reader-style results (consumer only).
// It never returns a short read: either p is filled or nothing is consumed.
func (r *Ring) Read(p []byte) (int, error) {
	if !r.Pop(p) {
		return 0, ErrWouldBlock
	}
	return len(p), nil
}

// Size returns the length of the backing storage.
func (r *Ring) Size() int {
	return int(r.mask + 1)
}

// Cap returns the usable capacity, the largest Push that can succeed.
func (r *Ring) Cap() int {
	return int(r.mask)
}

// Len returns a snapshot of the occupied bytes.
//
// Called by the consumer, the result is a lower bound: the producer may
// publish more at any time.
func (r *Ring) Len() int {
	head := r.head.LoadAcquire()
	tail := r.tail.LoadAcquire()
	return int((tail - head) & r.mask)
}

// Free returns a snapshot of the free bytes.
//
// Called by the producer, the result is a lower bound.
func (r *Ring) Free() int {
	tail := r.tail.LoadAcquire()
	head := r.head.LoadAcquire()
	return int((head - tail - 1) & r.mask)
}
