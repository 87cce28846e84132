// Command oscquery-explore is an interactive OSCQuery client.
//
// It connects to an OSCQuery server over HTTP and provides a shell for
// navigating the published address tree. It can also browse the local
// network for advertised servers via mDNS.
//
// Usage:
//
//	oscquery-explore [flags]
//
// Flags:
//
//	-host string       Server address as host:port (default "localhost:8080")
//	-browse            Browse mDNS for OSCQuery servers and exit
//	-timeout duration  Browse/request timeout (default 10s)
//
// Shell commands:
//
//	ls              List children of the current group
//	cd <name>       Enter a child group ("cd .." and "cd /path" work too)
//	get [ATTR]      Print the current node, optionally one attribute
//	hostinfo        Print the server's HOST_INFO
//	help            Show command help
//	quit            Exit the shell
//
// Examples:
//
//	# Find servers on the local network
//	oscquery-explore -browse
//
//	# Explore a server
//	oscquery-explore -host 192.168.1.20:8080
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oscquery-protocol/oscquery-go/pkg/discovery"
)

var (
	host    = flag.String("host", "localhost:8080", "Server address as host:port")
	browse  = flag.Bool("browse", false, "Browse mDNS for OSCQuery servers and exit")
	timeout = flag.Duration("timeout", discovery.BrowseTimeout, "Browse/request timeout")
)

func main() {
	flag.Parse()

	if *browse {
		if err := runBrowse(*timeout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	client := newClient(*host, *timeout)
	shell, err := newShell(client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := shell.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runBrowse lists OSCQuery servers advertised on the local network.
func runBrowse(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	entries, err := discovery.Browse(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Browsing %s for %s...\n", discovery.ServiceTypeOSCQuery, timeout)
	found := 0
	for entry := range entries {
		found++
		fmt.Printf("  %-30s %s:%d", entry.InstanceName, entry.Host, entry.Port)
		if len(entry.Addresses) > 0 {
			fmt.Printf("  (%s)", strings.Join(entry.Addresses, ", "))
		}
		fmt.Println()
	}
	if found == 0 {
		fmt.Println("No servers found.")
	}
	return nil
}
