// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"errors"
	"runtime"
	"sync"
	"time"
)

// pair runs producer and consumer on two locked OS threads and returns
// once both have finished. Pinning failures do not stop either side; they
// are returned after the join.
func (c *Config) pair(producer, consumer func()) error {
	var wg sync.WaitGroup
	var perr, cerr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		perr = onThread(c.ProducerCPU, producer)
	}()
	go func() {
		defer wg.Done()
		cerr = onThread(c.ConsumerCPU, consumer)
	}()
	wg.Wait()
	return errors.Join(perr, cerr)
}

// onThread runs fn locked to the current OS thread, pinned to cpu when
// cpu >= 0. A pinned thread stays locked and exits with the goroutine so
// the runtime never reuses it with a narrowed affinity mask.
func onThread(cpu int, fn func()) error {
	runtime.LockOSThread()
	var err error
	if cpu < 0 {
		defer runtime.UnlockOSThread()
	} else {
		err = pinThread(cpu)
	}
	fn()
	return err
}

// perSecond returns n events over d as a rate; zero for a zero duration.
func perSecond(n float64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return n / d.Seconds()
}
