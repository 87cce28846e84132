// Command oscquery-log is a tool for viewing and analyzing OSCQuery
// query log files.
//
// Log files are created by oscquery-server with the -query-log flag.
//
// Usage:
//
//	oscquery-log <command> [flags] <file.qlog>
//
// Commands:
//
//	view   View log file in human-readable format
//	stats  Show statistics about the log file
//
// Examples:
//
//	# View all queries
//	oscquery-log view queries.qlog
//
//	# View only queries that missed the tree
//	oscquery-log view -not-found queries.qlog
//
//	# View queries for one path
//	oscquery-log view -path /synth/volume queries.qlog
//
//	# Show statistics
//	oscquery-log stats queries.qlog
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	oqlog "github.com/oscquery-protocol/oscquery-go/pkg/log"
)

const usage = `oscquery-log - OSCQuery Query Log Analyzer

Usage:
  oscquery-log <command> [flags] <file.qlog>

Commands:
  view   View log file in human-readable format
  stats  Show statistics about the log file

Use "oscquery-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `oscquery-log view - View log file in human-readable format

Usage:
  oscquery-log view [flags] <file.qlog>

Flags:
`)
		fs.PrintDefaults()
	}

	path := fs.String("path", "", "Filter by queried path")
	attribute := fs.String("attribute", "", "Filter by attribute filter (e.g. VALUE)")
	requestID := fs.String("request-id", "", "Filter by request ID")
	status := fs.Int("status", 0, "Filter by HTTP status code")
	notFound := fs.Bool("not-found", false, "Show only queries that missed the tree")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	file := logFileArg(fs)

	filter := &oqlog.Filter{
		Path:         *path,
		Attribute:    *attribute,
		RequestID:    *requestID,
		NotFoundOnly: *notFound,
	}
	if *status != 0 {
		filter.Status = status
	}

	events, err := oqlog.ReadFile(file, filter)
	if err != nil {
		fatal(err)
	}

	for _, e := range events {
		printEvent(e)
	}
	fmt.Printf("\n%d events\n", len(events))
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `oscquery-log stats - Show statistics about the log file

Usage:
  oscquery-log stats <file.qlog>
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	file := logFileArg(fs)

	events, err := oqlog.ReadFile(file, nil)
	if err != nil {
		fatal(err)
	}
	printStats(os.Stdout, events)
}

func logFileArg(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printEvent(e oqlog.Event) {
	query := e.Path
	if e.Attribute != "" {
		query += "?" + e.Attribute
	}
	fmt.Printf("%s  %3d  %-40s %8s  %6dB  %s\n",
		e.Timestamp.Format(time.RFC3339),
		e.Status,
		query,
		e.Duration.Round(time.Microsecond),
		e.BodyBytes,
		e.RemoteAddr)
}
