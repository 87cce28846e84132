package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	oqlog "github.com/oscquery-protocol/oscquery-go/pkg/log"
)

// printStats summarizes a set of query events: volume, time span,
// status breakdown, latency, and the hottest paths.
func printStats(w io.Writer, events []oqlog.Event) {
	fmt.Fprintf(w, "Events: %d\n", len(events))
	if len(events) == 0 {
		return
	}

	first, last := events[0].Timestamp, events[0].Timestamp
	statuses := map[int]int{}
	paths := map[string]int{}
	attributes := map[string]int{}
	var totalDuration time.Duration
	var totalBytes int

	for _, e := range events {
		if e.Timestamp.Before(first) {
			first = e.Timestamp
		}
		if e.Timestamp.After(last) {
			last = e.Timestamp
		}
		statuses[e.Status]++
		paths[e.Path]++
		if e.Attribute != "" {
			attributes[e.Attribute]++
		}
		totalDuration += e.Duration
		totalBytes += e.BodyBytes
	}

	fmt.Fprintf(w, "Time span: %s to %s (%s)\n",
		first.Format(time.RFC3339), last.Format(time.RFC3339),
		last.Sub(first).Round(time.Second))
	fmt.Fprintf(w, "Mean duration: %s\n", (totalDuration / time.Duration(len(events))).Round(time.Microsecond))
	fmt.Fprintf(w, "Total body bytes: %d\n", totalBytes)

	fmt.Fprintln(w, "\nStatus codes:")
	for _, status := range sortedKeys(statuses) {
		fmt.Fprintf(w, "  %3d: %d\n", status, statuses[status])
	}

	fmt.Fprintln(w, "\nTop paths:")
	for _, pc := range topCounts(paths, 10) {
		fmt.Fprintf(w, "  %6d  %s\n", pc.count, pc.key)
	}

	if len(attributes) > 0 {
		fmt.Fprintln(w, "\nAttribute filters:")
		for _, ac := range topCounts(attributes, 10) {
			fmt.Fprintf(w, "  %6d  %s\n", ac.count, ac.key)
		}
	}
}

type keyCount struct {
	key   string
	count int
}

// topCounts returns the n most frequent keys, most frequent first.
// Ties break alphabetically so output is stable.
func topCounts(m map[string]int, n int) []keyCount {
	counts := make([]keyCount, 0, len(m))
	for k, c := range m {
		counts = append(counts, keyCount{k, c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].key < counts[j].key
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
