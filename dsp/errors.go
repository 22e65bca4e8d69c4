// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	// ErrLengthMismatch means dst does not have the length of the result.
	ErrLengthMismatch = errors.New("dsp: dst length does not match result length")
)
