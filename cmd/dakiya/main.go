package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/dakiya/internal/config"
	"github.com/samvad-hq/dakiya/internal/logger"
	"github.com/samvad-hq/dakiya/pkg/httpservice"
	"github.com/samvad-hq/dakiya/pkg/profiles"
	"github.com/samvad-hq/dakiya/pkg/replay"
)

// dakiya fetch tool: performs a GET through the library so profiles,
// identity and cassette recording can be exercised from the command line.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dakiya failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profileID := flag.String("profile", "", "endpoint profile id from the profiles file")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: dakiya [-profile id] <url-or-path>")
	}
	target := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory := httpservice.NewClientFactoryTimeout(
		httpservice.Identity(cfg.AppName, cfg.AppVersion),
		cfg.RequestTimeout,
	)
	uri := target

	if *profileID != "" {
		reg, err := profiles.Load(cfg.ProfilesFile)
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		profile, ok := reg.ProfileByID(*profileID)
		if !ok {
			return fmt.Errorf("unknown profile %q", *profileID)
		}
		factory = profile.Factory()
		uri = profile.Endpoint(target)
	}

	logger.InfoObj("fetching", "uri", uri)

	var svc httpservice.Service = httpservice.NewRestService(factory, httpservice.WithLogger(log))

	if cfg.CassettePath != "" {
		cassette, err := replay.Open(cfg.CassettePath)
		if err != nil {
			return fmt.Errorf("open cassette: %w", err)
		}
		defer cassette.Close()
		svc = replay.NewRecorder(cassette, svc)
	}

	body, err := svc.Get(ctx, uri)
	if err != nil {
		logger.ErrorObj("fetch failed", "error", err)
		return err
	}

	fmt.Println(body)
	return nil
}
