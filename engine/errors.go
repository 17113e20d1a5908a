// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrInvalidRender = errors.New("sample rate, channels and frames must be positive")
	ErrUnknownEngine = errors.New("no engine factory registered under that name")
)
