// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"runtime"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// Policy selects how a side waits after a failed push or pop.
type Policy string

const (
	// PolicySpin issues CPU pause hints via [spin.Wait].
	PolicySpin Policy = "spin"
	// PolicyYield yields the processor with runtime.Gosched.
	PolicyYield Policy = "yield"
	// PolicyBackoff uses adaptive [iox.Backoff].
	PolicyBackoff Policy = "backoff"
)

// ParsePolicy parses a policy name. The empty string selects PolicySpin.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case "":
		return PolicySpin, nil
	case PolicySpin, PolicyYield, PolicyBackoff:
		return p, nil
	default:
		return "", fmt.Errorf("bench: unknown wait policy %q", s)
	}
}

// waiter is per-goroutine retry state. Wait after a failure, Reset after
// a success.
type waiter interface {
	Wait()
	Reset()
}

func newWaiter(p Policy) waiter {
	switch p {
	case PolicyYield:
		return yieldWaiter{}
	case PolicyBackoff:
		return &backoffWaiter{}
	default:
		return &spinWaiter{}
	}
}

type spinWaiter struct{ sw spin.Wait }

func (w *spinWaiter) Wait()  { w.sw.Once() }
func (w *spinWaiter) Reset() { w.sw.Reset() }

type yieldWaiter struct{}

func (yieldWaiter) Wait()  { runtime.Gosched() }
func (yieldWaiter) Reset() {}

type backoffWaiter struct{ b iox.Backoff }

func (w *backoffWaiter) Wait()  { w.b.Wait() }
func (w *backoffWaiter) Reset() { w.b.Reset() }
