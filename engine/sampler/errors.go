// SPDX-License-Identifier: EPL-2.0

package sampler

import "errors"

var (
	// ErrEmptyBank indicates a voicebank with no usable samples.
	ErrEmptyBank = errors.New("voicebank has no samples")

	// ErrInvalidOption indicates an unparseable or out-of-range engine option.
	ErrInvalidOption = errors.New("invalid sampler option")
)
