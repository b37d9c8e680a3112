package services

import (
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileNamer generates the stored name for an uploaded file. Implementations
// must keep the extension of the original filename.
type FileNamer interface {
	Name(originalFilename string) string
}

// TimestampNamer names files "<unix millis><ext>". When two names are
// requested within the same millisecond, or the clock steps backwards, the
// stamp is bumped past the last issued one so names never repeat.
type TimestampNamer struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewTimestampNamer(now func() time.Time) *TimestampNamer {
	if now == nil {
		now = time.Now
	}
	return &TimestampNamer{now: now}
}

func (n *TimestampNamer) Name(originalFilename string) string {
	n.mu.Lock()
	stamp := n.now().UnixMilli()
	if stamp <= n.last {
		stamp = n.last + 1
	}
	n.last = stamp
	n.mu.Unlock()

	return strconv.FormatInt(stamp, 10) + filepath.Ext(originalFilename)
}

// UUIDNamer names files "<uuid v4><ext>".
type UUIDNamer struct{}

func NewUUIDNamer() UUIDNamer {
	return UUIDNamer{}
}

func (UUIDNamer) Name(originalFilename string) string {
	return uuid.NewString() + filepath.Ext(originalFilename)
}
