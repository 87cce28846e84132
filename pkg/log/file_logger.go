package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends query events to a .qlog file. A .qlog file is a
// plain concatenation of CBOR event records, so appending across
// server restarts keeps it readable by the analyzer and by ReadFile.
//
// Log never fails loudly: a record that cannot be encoded or written
// is dropped rather than disturb request handling, and the first such
// error is retained for Close to report.
type FileLogger struct {
	mu     sync.Mutex
	file   *os.File
	enc    *cbor.Encoder
	err    error // first dropped-record error
	closed bool
}

// NewFileLogger opens (or creates, mode 0644) the .qlog file at path
// for appending.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening query log: %w", err)
	}
	return &FileLogger{file: f, enc: NewEncoder(f)}, nil
}

// Log appends one event record. Safe for concurrent use; events from
// a closed logger are dropped.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if err := l.enc.Encode(event); err != nil && l.err == nil {
		l.err = err
	}
}

// Close closes the file and reports the first error Log had to
// swallow, if any. Close is idempotent; Log calls after Close are
// dropped.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	closeErr := l.file.Close()
	if l.err != nil {
		return fmt.Errorf("query log dropped records: %w", l.err)
	}
	return closeErr
}

var _ Logger = (*FileLogger)(nil)
