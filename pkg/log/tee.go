package log

// Tee returns a Logger that forwards each event to every sink in
// order. The reference server uses it to pair a .qlog file with
// console echoing. Forwarding is sequential on the request goroutine,
// so a slow sink delays the sinks after it; each sink still guards
// its own state for concurrent events.
func Tee(sinks ...Logger) Logger {
	return tee(sinks)
}

type tee []Logger

func (t tee) Log(event Event) {
	for _, sink := range t {
		sink.Log(event)
	}
}
