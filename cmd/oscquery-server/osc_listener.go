package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	goosc "github.com/hypebeast/go-osc/osc"

	"github.com/oscquery-protocol/oscquery-go/pkg/osc"
)

// oscListener receives OSC messages on the advertised UDP port and
// logs them. Received values are not applied to the published tree;
// the tree is immutable once serving starts.
type oscListener struct {
	addr   string
	logger *slog.Logger
	conn   net.PacketConn
}

func newOSCListener(addr string, logger *slog.Logger) *oscListener {
	return &oscListener{addr: addr, logger: logger}
}

// Start binds the UDP socket and serves packets in the background.
func (l *oscListener) Start() error {
	conn, err := net.ListenPacket("udp", l.addr)
	if err != nil {
		return fmt.Errorf("binding OSC port: %w", err)
	}
	l.conn = conn

	server := &goosc.Server{Dispatcher: l}
	go func() {
		if err := server.Serve(conn); err != nil && !errors.Is(err, net.ErrClosed) {
			l.logger.Error("osc listener stopped", slog.String("error", err.Error()))
		}
	}()

	l.logger.Info("osc listener started", slog.String("addr", l.addr))
	return nil
}

// Stop closes the UDP socket, ending the serve loop.
func (l *oscListener) Stop() {
	if l.conn != nil {
		_ = l.conn.Close()
	}
}

// Dispatch implements goosc.Dispatcher. Bundles are flattened; the
// bundle timetag is ignored since messages are only logged.
func (l *oscListener) Dispatch(packet goosc.Packet) {
	switch p := packet.(type) {
	case *goosc.Message:
		l.logMessage(p)
	case *goosc.Bundle:
		for _, msg := range p.Messages {
			l.logMessage(msg)
		}
		for _, bundle := range p.Bundles {
			l.Dispatch(bundle)
		}
	}
}

func (l *oscListener) logMessage(msg *goosc.Message) {
	values := make([]osc.Value, 0, len(msg.Arguments))
	for _, arg := range msg.Arguments {
		v, err := osc.FromArgument(arg)
		if err != nil {
			l.logger.Warn("osc message with unsupported argument",
				slog.String("address", msg.Address),
				slog.String("error", err.Error()))
			return
		}
		values = append(values, v)
	}

	l.logger.Info("osc message received",
		slog.String("address", msg.Address),
		slog.String("type", osc.TypeTagOf(values)),
		slog.String("values", formatValues(values)))
}

func formatValues(values []osc.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		data, err := v.MarshalJSON()
		if err != nil {
			parts[i] = "?"
			continue
		}
		parts[i] = string(data)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
