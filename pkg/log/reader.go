package log

import (
	"io"
	"os"
	"time"
)

// Filter specifies criteria for filtering log events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	// RequestID filters by exact request ID match.
	RequestID string

	// Path filters by exact queried path.
	Path string

	// Attribute filters by the attribute filter used in the query.
	Attribute string

	// Status filters by HTTP status code.
	Status *int

	// NotFoundOnly keeps only queries that missed the tree.
	NotFoundOnly bool

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

// matches returns true if the event matches all filter criteria.
func (f *Filter) matches(event Event) bool {
	if f.RequestID != "" && event.RequestID != f.RequestID {
		return false
	}
	if f.Path != "" && event.Path != f.Path {
		return false
	}
	if f.Attribute != "" && event.Attribute != f.Attribute {
		return false
	}
	if f.Status != nil && event.Status != *f.Status {
		return false
	}
	if f.NotFoundOnly && !event.NotFound() {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// ReadFile reads all events from a .qlog file, applying the filter.
// A nil filter matches everything.
func ReadFile(path string, filter *Filter) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f, filter)
}

// ReadAll decodes events from r until EOF, applying the filter.
// A nil filter matches everything.
func ReadAll(r io.Reader, filter *Filter) ([]Event, error) {
	decoder := NewDecoder(r)

	var events []Event
	for {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			if err == io.EOF {
				return events, nil
			}
			return events, err
		}
		if filter == nil || filter.matches(event) {
			events = append(events, event)
		}
	}
}
