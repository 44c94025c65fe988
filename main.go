package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

const usage = `usage: artmanager <command> [flags]

commands:
  ych         record an auction slot (YCH) won by a customer
  commission  record a commission
  request     record an art request
  serve       run the HTTP service that records submitted forms

run "artmanager <command> -h" for the flags of a command.`

func main() {
	if len(os.Args) < 2 {
		exitf("%s", usage)
	}
	switch os.Args[1] {
	case "-h", "-help", "--help", "help":
		fmt.Println(usage)
		return
	case "serve", string(KindYCH), string(KindCommission), string(KindRequest):
	default:
		exitf("unknown command %q\n%s", os.Args[1], usage)
	}
	cfg, err := LoadConfig()
	if err != nil {
		exitf("Error: %v", err)
	}
	logger := newLogger(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ids, closeIDs, err := newIDGenerator(ctx, cfg, os.Args[1] == "serve")
	if err != nil {
		exitf("Error: %v", err)
	}
	defer closeIDs()

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "serve":
		err = serve(ctx, cfg, ids, logger)
	default:
		err = runRecordCommand(ctx, Kind(cmd), args, cliDeps{
			cfg:    cfg,
			stdin:  os.Stdin,
			stdout: os.Stdout,
			stderr: os.Stderr,
			ids:    ids,
			clock:  NewSystemClock(),
			logger: logger,
		})
	}
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		closeIDs()
		exitf("Error: %v", err)
	}
}

// newIDGenerator picks the Redis sequence when REDIS_ADDR is set and random
// UUIDs otherwise. The server verifies Redis up front; record commands only
// connect once an id actually has to be generated.
func newIDGenerator(ctx context.Context, cfg Config, eager bool) (IDGenerator, func(), error) {
	if cfg.RedisAddr == "" {
		return UUIDGenerator{}, func() {}, nil
	}
	if !eager {
		lazy := NewLazyRedisSequence(cfg.RedisAddr)
		return lazy, func() { lazy.Close() }, nil
	}
	seq, err := DialRedisSequence(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	return seq, func() { seq.Close() }, nil
}

// serve runs the HTTP form service until ctx is cancelled.
func serve(ctx context.Context, cfg Config, ids IDGenerator, logger zerolog.Logger) error {
	store := NewFileStore(cfg.Dir, os.Stdout, logger)
	handler := NewHandler(store, ids, NewSystemClock(), cfg.Echo, logger)
	router := handler.Routes()

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      loggingMiddleware(logger)(authMiddleware(parseAPIKeys(cfg.APIKeys))(router)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Str("dir", store.Dir()).Msg("server is listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- fmt.Errorf("could not listen: %w", err)
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info().Msg("server is shutting down")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}

// exitf writes a formatted error message to stderr and exits with code 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
