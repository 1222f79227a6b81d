package store

import "errors"

// Sentinel errors for single-file operations. Callers branch with
// errors.Is and attach path context when wrapping.
var (
	ErrNotTracked      = errors.New("file is not tracked")
	ErrVersionNotFound = errors.New("version not found in history")
	ErrNoChange        = errors.New("content matches the latest snapshot")
	ErrTargetExists    = errors.New("target file already exists")
)
