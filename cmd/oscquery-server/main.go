// Command oscquery-server is a reference OSCQuery server.
//
// It publishes an OSC address tree over HTTP+JSON, advertises the
// server via mDNS, and listens for OSC messages on the advertised UDP
// port. The tree is built from a YAML endpoint manifest, or from a
// small built-in demo tree when no manifest is given.
//
// Usage:
//
//	oscquery-server [flags]
//
// Flags:
//
//	-name string       Server name advertised in HOST_INFO (default "OSCQuery Server")
//	-http-port int     HTTP query port (default 8080)
//	-osc-ip string     OSC endpoint IP advertised in HOST_INFO (default "127.0.0.1")
//	-osc-port int      OSC endpoint UDP port (default 9000)
//	-config string     YAML endpoint manifest path
//	-query-log string  Write per-request query events to this .qlog file
//	-log-level string  Log level: debug, info, warn, error (default "info")
//	-no-mdns           Disable mDNS advertising
//	-no-osc            Disable the OSC UDP listener
//
// Examples:
//
//	# Serve the built-in demo tree
//	oscquery-server -name "Demo Server"
//
//	# Serve a manifest with query logging
//	oscquery-server -config synth.yaml -query-log queries.qlog
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oscquery-protocol/oscquery-go/pkg/discovery"
	oqlog "github.com/oscquery-protocol/oscquery-go/pkg/log"
	"github.com/oscquery-protocol/oscquery-go/pkg/model"
	"github.com/oscquery-protocol/oscquery-go/pkg/service"
)

// Config holds the server configuration.
type Config struct {
	Name       string
	HTTPPort   int
	OSCIP      string
	OSCPort    int
	ConfigFile string
	QueryLog   string
	LogLevel   string
	NoMDNS     bool
	NoOSC      bool
}

var config Config

func init() {
	flag.StringVar(&config.Name, "name", "OSCQuery Server", "Server name advertised in HOST_INFO")
	flag.IntVar(&config.HTTPPort, "http-port", 8080, "HTTP query port")
	flag.StringVar(&config.OSCIP, "osc-ip", "127.0.0.1", "OSC endpoint IP advertised in HOST_INFO")
	flag.IntVar(&config.OSCPort, "osc-port", 9000, "OSC endpoint UDP port")
	flag.StringVar(&config.ConfigFile, "config", "", "YAML endpoint manifest path")
	flag.StringVar(&config.QueryLog, "query-log", "", "Write per-request query events to this .qlog file")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.NoMDNS, "no-mdns", false, "Disable mDNS advertising")
	flag.BoolVar(&config.NoOSC, "no-osc", false, "Disable the OSC UDP listener")
}

func main() {
	flag.Parse()

	logger := setupLogging(config.LogLevel)

	if err := validateConfig(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tree, err := buildTree()
	if err != nil {
		logger.Error("failed to build tree", slog.String("error", err.Error()))
		os.Exit(1)
	}

	queryLogger, closeQueryLog, err := buildQueryLogger(logger)
	if err != nil {
		logger.Error("failed to open query log", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeQueryLog()

	srv, err := service.New(service.Config{
		Addr:        fmt.Sprintf(":%d", config.HTTPPort),
		Logger:      logger,
		QueryLogger: queryLogger,
	}, tree)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 2)
	go func() { errCh <- srv.ListenAndServe() }()

	if !config.NoOSC {
		listener := newOSCListener(fmt.Sprintf("%s:%d", config.OSCIP, config.OSCPort), logger)
		if err := listener.Start(); err != nil {
			logger.Error("failed to start OSC listener", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer listener.Stop()
	}

	if !config.NoMDNS {
		advertiser, err := discovery.NewMDNSAdvertiser(discovery.DefaultAdvertiserConfig())
		if err != nil {
			logger.Error("failed to create advertiser", slog.String("error", err.Error()))
			os.Exit(1)
		}
		info := &discovery.ServiceInfo{
			Name:     tree.HostInfo().Name,
			HTTPPort: uint16(config.HTTPPort),
			OSCPort:  uint16(config.OSCPort),
		}
		if err := advertiser.Advertise(ctx, info); err != nil {
			logger.Error("mDNS advertising failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer advertiser.Stop()
		logger.Info("advertising via mDNS",
			slog.String("instance", discovery.InstanceName(info.Name)),
			slog.String("service", discovery.ServiceTypeOSCQuery))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server failed", slog.String("error", err.Error()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", slog.String("error", err.Error()))
	}
}

func setupLogging(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return logger
}

func validateConfig() error {
	if config.HTTPPort < 1 || config.HTTPPort > 65535 {
		return fmt.Errorf("http-port must be 1-65535, got %d", config.HTTPPort)
	}
	if config.OSCPort < 1 || config.OSCPort > 65535 {
		return fmt.Errorf("osc-port must be 1-65535, got %d", config.OSCPort)
	}
	return nil
}

// buildTree loads the manifest tree, or the demo tree when no manifest
// path was given. Command-line name/ip/port flags override nothing set
// explicitly in the manifest.
func buildTree() (*model.Tree, error) {
	if config.ConfigFile == "" {
		return demoTree(config.Name, config.OSCIP, uint16(config.OSCPort)), nil
	}
	manifest, err := LoadManifest(config.ConfigFile)
	if err != nil {
		return nil, err
	}
	if manifest.Name == "" {
		manifest.Name = config.Name
	}
	if manifest.OSCIP == "" {
		manifest.OSCIP = config.OSCIP
	}
	if manifest.OSCPort == 0 {
		manifest.OSCPort = uint16(config.OSCPort)
	}
	return manifest.BuildTree()
}

func buildQueryLogger(logger *slog.Logger) (oqlog.Logger, func(), error) {
	slogQueries := oqlog.NewSlogAdapter(logger)
	if config.QueryLog == "" {
		return slogQueries, func() {}, nil
	}
	file, err := oqlog.NewFileLogger(config.QueryLog)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := file.Close(); err != nil {
			logger.Warn("closing query log", slog.String("error", err.Error()))
		}
	}
	return oqlog.Tee(file, slogQueries), closeFn, nil
}
