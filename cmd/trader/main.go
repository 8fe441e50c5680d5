package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/starkbot/gostark/pkg/config"
	"github.com/starkbot/gostark/pkg/logger"
	"github.com/starkbot/gostark/stark/client"
	"github.com/starkbot/gostark/stark/types"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config (env vars override)")
		action     = flag.String("action", "time", "time | markets | account | orders | positions")
		market     = flag.String("market", "", "market filter, e.g. BTC-USD")
		address    = flag.String("address", "", "ethereum address for -action account")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.Init(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var creds *types.Credentials
	if cfg.APIKey != "" {
		creds = &types.Credentials{
			Key:        cfg.APIKey,
			Secret:     cfg.APISecret,
			Passphrase: cfg.APIPassphrase,
		}
	}

	c, err := client.NewClient(client.Config{
		Host:            cfg.Host,
		Network:         types.Network(cfg.Network),
		Credentials:     creds,
		StarkPrivateKey: cfg.StarkPrivateKey,
		PositionID:      cfg.PositionID,
		Logger:          log,
	})
	if err != nil {
		log.WithError(err).Fatal("client init failed")
	}
	pub := client.NewPublicClient(cfg.Host)

	if err := c.SyncClock(ctx); err != nil {
		log.WithError(err).Warn("clock sync failed, using local time")
	}

	var out any
	switch *action {
	case "time":
		out, err = pub.GetServerTime(ctx)
	case "markets":
		out, err = pub.GetMarkets(ctx, *market)
	case "account":
		out, err = c.GetAccount(ctx, *address)
	case "orders":
		out, err = c.GetOrders(ctx, client.OrderFilters{Market: *market})
	case "positions":
		out, err = c.GetPositions(ctx, *market, "")
	default:
		log.Fatalf("unknown action %q", *action)
	}
	if err != nil {
		log.WithError(err).Fatal("request failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.WithError(err).Fatal("encode output")
	}
}
