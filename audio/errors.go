// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrChannelOutOfRange = errors.New("channel index out of range")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
