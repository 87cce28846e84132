package log

// Logger receives one Event per resolved query. The HTTP handler
// emits the event after the response body is written, so a Logger
// sees events in completion order, not arrival order. Queries are
// served in parallel, so implementations must be safe for concurrent
// use, and Log runs on the request goroutine: anything slow belongs
// behind a queue.
type Logger interface {
	Log(event Event)
}

// Discard is a Logger that drops every event. Servers configured
// without a query logger fall back to it.
var Discard Logger = discard{}

type discard struct{}

func (discard) Log(Event) {}
