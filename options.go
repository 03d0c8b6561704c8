// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import "math/bits"

// DefaultSize is the backing storage size used by cmd/ringbench.
const DefaultSize = 1024

// MaxSize is the largest storage size New accepts: the largest power of 2
// an int can hold.
const MaxSize = 1 << (bits.UintSize - 2)

// CacheLineSize is the alignment unit between the two cursors.
const CacheLineSize = 64

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [CacheLineSize]byte
