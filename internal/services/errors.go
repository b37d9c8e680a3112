package services

import "fmt"

// StorageWriteError reports a failed attempt to write an upload to disk.
// Writes are single-attempt; callers should not retry.
type StorageWriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageWriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}
