// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	ErrEmptyName         = errors.New("render: figure has no name")
	ErrLengthMismatch    = errors.New("render: X and Y lengths differ")
	ErrNoFunction        = errors.New("render: function figure without a function")
	ErrEmptyDomain       = errors.New("render: function domain is empty")
	ErrUnsupportedFormat = errors.New("render: unsupported image format")
)
