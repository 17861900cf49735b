package fexport

import "errors"

// Common errors
var (
	ErrNotFound   = errors.New("export not found")
	ErrBadKey     = errors.New("export key escapes the store root")
	ErrBadFormat  = errors.New("unknown export format")
	ErrEmptyInput = errors.New("nothing to export")
)
