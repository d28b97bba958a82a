package storage

import "errors"

var (
	ErrNotFound        = errors.New("the skip list object was not found")
	ErrWriteIncomplete = errors.New("a file write succeeded, but the number of bytes written was shorter than the supplied data")
	ErrBadListPath     = errors.New("the path does not identify a skip list object")
)
