// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	ErrInvalidConfig  = errors.New("sample rate, channels and block size must be positive")
	ErrNilCallback    = errors.New("pull callback must not be nil")
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrShortRender    = errors.New("engine returned wrong sample count")
)
