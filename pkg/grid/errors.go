package grid

import "errors"

var (
	ErrOutOfRange              = errors.New("grid: coordinate out of range")
	ErrUninitialized           = errors.New("grid: pixel was never written")
	ErrInvalidDimensions       = errors.New("grid: dimensions must be positive multiples of the tile size")
	ErrInvalidCompressionInput = errors.New("grid: cannot compress a partially populated image")
)
