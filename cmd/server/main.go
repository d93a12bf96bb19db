package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gbarnett-hz/langchain/config"
	"github.com/gbarnett-hz/langchain/pkg/otel"
	"github.com/gbarnett-hz/langchain/server"
)

// set via ldflags
var version = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "config file")
	addressFlag := flag.String("address", "", "listen address")
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configFlag, *addressFlag); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path, address string) error {
	shutdown, err := otel.Setup(ctx, "segmenter", version)

	if err != nil {
		return err
	}

	defer shutdown(context.Background())

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !isFlagSet("config") {
		slog.Warn("config file not found, using defaults", "path", path)
		path = ""
	}

	cfg, err := config.Parse(path)

	if err != nil {
		return err
	}

	if address != "" {
		cfg.Address = address
	}

	s, err := server.New(cfg)

	if err != nil {
		return err
	}

	return s.ListenAndServe(ctx)
}

func isFlagSet(name string) bool {
	set := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}
