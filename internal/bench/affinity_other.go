// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package bench

import "errors"

var errPinUnsupported = errors.New("bench: cpu pinning is only supported on linux")

func pinThread(cpu int) error {
	return errPinUnsupported
}
