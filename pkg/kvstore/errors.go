package kvstore

import "errors"

var (
	ErrEmptyKey       = errors.New("kvstore: empty key")
	ErrClosed         = errors.New("kvstore: store is closed")
	ErrUnknownDriver  = errors.New("kvstore: unknown driver")
	ErrPathRequired   = errors.New("kvstore: path is required")
	ErrInvalidFileKey = errors.New("kvstore: key is not a valid file name")
)
