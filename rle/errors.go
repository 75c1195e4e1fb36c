package rle

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned for a document with no non-blank lines
	ErrEmptyInput = errors.New("RLE document is empty")
	// ErrMissingHeader is returned when no non-comment line carries the x and y fields
	ErrMissingHeader = errors.New("RLE document has no header line")
	// ErrUnsupportedRule is returned when the header does not declare rule = B3/S23
	ErrUnsupportedRule = errors.New("RLE rule must be B3/S23")
)
