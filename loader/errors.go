// SPDX-License-Identifier: EPL-2.0

package loader

import "errors"

var (
	// ErrUnsupportedFormat means no decoder is registered for the file extension.
	ErrUnsupportedFormat = errors.New("loader: unsupported audio format")
)
