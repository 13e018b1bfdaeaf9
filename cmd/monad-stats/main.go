package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Anshu84487/monad-stats/pkg/chain"
	"github.com/Anshu84487/monad-stats/pkg/config"
	"github.com/Anshu84487/monad-stats/pkg/scanner"
	"github.com/Anshu84487/monad-stats/pkg/server"
)

var (
	cfgPath string
	rpcURL  string
	span    uint64
)

func main() {
	root := &cobra.Command{
		Use:           "monad-stats",
		Short:         "Wallet activity stats for the Monad testnet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&rpcURL, "rpc-url", "", "RPC endpoint, overrides the config file")

	check := &cobra.Command{
		Use:   "check <address>",
		Short: "Scan recent blocks and print stats for one wallet",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	check.Flags().Uint64Var(&span, "span", 0, "number of recent blocks to scan")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API server",
		RunE:  runServe,
	}

	root.AddCommand(check, serve)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, zerolog.Logger, *scanner.Checker, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	if rpcURL != "" {
		cfg.RPCURL = rpcURL
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	logger := zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()

	client, err := chain.Dial(cfg.RPCURL)
	if err != nil {
		return nil, logger, nil, err
	}

	checker := scanner.New(logger, client, scanner.Options{
		BatchSize:  cfg.Scan.BatchSize,
		ChunkSize:  cfg.Scan.ChunkSize,
		BatchDelay: cfg.Scan.BatchDelay.Std(),
		ChunkDelay: cfg.Scan.ChunkDelay.Std(),
		MinSpan:    cfg.Scan.MinSpan,
		MaxSpan:    cfg.Scan.MaxSpan,
	})
	return cfg, logger, checker, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, checker, err := setup()
	if err != nil {
		return err
	}
	if span == 0 {
		span = cfg.Scan.DefaultSpan
	}

	// an interrupt requests cooperative cancellation: the in-flight batch
	// still completes and accumulated results are kept
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		<-sig
		logger.Info().Msg("cancel requested, finishing in-flight batch")
		checker.Cancel()
	}()

	if _, err := checker.Check(context.Background(), args[0], span); err != nil {
		return err
	}

	out, err := json.MarshalIndent(checker.Snapshot(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, checker, err := setup()
	if err != nil {
		return err
	}

	srv := server.New(logger, checker, cfg.API.Bind, cfg.API.Port, cfg.Scan.DefaultSpan)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		checker.Cancel()
		_ = srv.Shutdown(context.Background())
	}()

	return srv.Start()
}
