// Package main provides the CLI entrypoint of correcthorse, a generator of
// passphrases made of random words. The root command prints passphrases; the
// serve subcommand exposes the same generator over HTTP.
package main

import (
	"context"
	"correcthorse/internal/composer"
	"correcthorse/internal/config"
	"correcthorse/pkg/logger"
	"correcthorse/pkg/random"
	"correcthorse/pkg/wordlist"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// configEnv names the environment variable consulted when --config is absent.
const configEnv = "CORRECTHORSE_CONFIG"

// globals holds the values shared by every subcommand once the persistent
// flags have been parsed.
type globals struct {
	configPath string
	seed       uint64
	verbose    bool

	cfg *config.Config
}

// load reads the configuration and sets up logging. Flags given on the
// command line win over the configuration.
func (g *globals) load(cmd *cobra.Command) error {
	path := g.configPath
	if path == "" {
		path = os.Getenv(configEnv)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = g.seed
	}
	if g.verbose {
		cfg.LogLevel = "debug"
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("could not set up logger: %w", err)
	}
	g.cfg = cfg

	logger.Debug(cmd.Context(), "config loaded", zap.String("path", path), zap.String("wordlistDir", cfg.Wordlist.Dir))

	return nil
}

// loader builds the word list loader described by the configuration: the
// search directory first, then the lists compiled into the binary.
func (g *globals) loader() wordlist.Loader {
	chain := wordlist.Chain{wordlist.NewDir(g.cfg.Wordlist.Dir)}
	if !g.cfg.Wordlist.DisableBuiltin {
		chain = append(chain, wordlist.NewEmbedded())
	}

	return chain
}

// composer builds a Composer from the configuration. shared wraps the random
// source for concurrent use.
func (g *globals) composer(mp metric.MeterProvider, shared bool) (composer.Composer, error) {
	src, err := random.New(g.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("could not create random source: %w", err)
	}
	if shared {
		src = random.NewLocked(src)
	}

	opts := composer.NewOptions(g.cfg)
	opts.MeterProvider = mp

	c, err := composer.New(g.loader(), src, opts)
	if err != nil {
		return nil, fmt.Errorf("could not create composer: %w", err)
	}

	return c, nil
}

// newRootCommand sets up the root Cobra command, which generates passphrases,
// and registers the subcommands.
func newRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := generateCommand(g)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return g.load(cmd)
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "",
		"config file path (default $"+configEnv+", then environment only)")
	rootCmd.PersistentFlags().Uint64Var(&g.seed, "seed", 0, "seed for reproducible output (0 = random)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log debug information to stderr")

	rootCmd.AddCommand(serveCommand(g))

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	logger.Sync(ctx)
	stop()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
