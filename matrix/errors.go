// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinel errors; every message is prefixed with "matrix: ".
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil *CSR was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates a row or column index outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrTooLarge indicates that an index does not fit the int32 on-disk type.
	ErrTooLarge = errors.New("matrix: index exceeds int32 range")

	// ErrBadArchive indicates an .npz file that is not a float64 CSR archive.
	ErrBadArchive = errors.New("matrix: malformed npz archive")
)
