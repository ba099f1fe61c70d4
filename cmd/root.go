package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/KeydetZ/BC-Pokemon/internal/lookup"
	"github.com/KeydetZ/BC-Pokemon/internal/pokeapi"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const (
	envBaseURL     = "POKEAPI_BASE_URL"
	envLogLevel    = "POKEMON_LOG_LEVEL"
	envConcurrency = "POKEMON_CONCURRENCY"
)

type RootOptions struct {
	Lookup      string
	MoveType    string
	Generation  string
	LogLevel    string
	BaseURL     string
	Concurrency int
}

func (o *RootOptions) Validate() error {
	concatErr := func(err error, olderr error) error {
		if olderr != nil {
			return fmt.Errorf("%s\n%w", err.Error(), olderr)
		}
		return err
	}
	var err error
	if o.Lookup != "" && o.MoveType != "" {
		err = concatErr(lookup.ErrConflictingArgument, err)
	}
	if o.Lookup == "" && o.MoveType == "" {
		err = concatErr(lookup.ErrMissingArgument, err)
	}
	if o.Concurrency <= 0 {
		err = concatErr(fmt.Errorf("concurrency must be greater than 0"), err)
	}
	if u, perr := url.Parse(o.BaseURL); perr != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err = concatErr(fmt.Errorf("base-url must be an absolute http(s) url, got %q", o.BaseURL), err)
	}
	return err
}

func init() {
	// a missing .env is not an error, flags and the environment still apply
	_ = godotenv.Load()
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v, err := strconv.Atoi(envOr(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func parseLevel(level string) (zapcore.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.WarnLevel, false
	}
}

// newLogger writes human readable logs to w, leaving stdout to the lookup result.
func newLogger(w io.Writer, level string) *zap.Logger {
	lvl, ok := parseLevel(level)
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)
	logger := zap.New(core).With(zap.String("run", uuid.NewString()))
	if !ok {
		logger.Warn("no/invalid log level provided, setting to warn", zap.String("level", level))
	}
	return logger
}

func newRootCmd() *cobra.Command {
	opts := &RootOptions{}
	var logger *zap.Logger

	rootCmd := &cobra.Command{
		Use:   "pokemon",
		Short: "pokemon - a simple CLI using the RESTful pokemon API (https://pokeapi.co/) to look up Pokemons",
		Long: "pokemon - a simple CLI using the RESTful pokemon API (https://pokeapi.co/) to look up Pokemons\n\n" +
			"Looks up the moves of a single pokemon by name or pokedex id, or the 10 most commonly used moves of a move type.\n" +
			"Both can be restricted to the moves available in a single version group with --generation.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.Validate(); err != nil {
				return &lookup.ExitError{Code: lookup.ExitUsage, Err: fmt.Errorf("incorrect command usage:\n%w", err)}
			}
			logger = newLogger(cmd.ErrOrStderr(), opts.LogLevel)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer func() {
				_ = logger.Sync()
			}()
			return rootMain(cmd, opts, logger)
		},
	}

	rootCmd.Flags().StringVar(&opts.Lookup, "lookup", "", "Lookup by name or id")
	rootCmd.Flags().StringVar(&opts.MoveType, "move-type", "", "Lookup by move type")
	rootCmd.Flags().StringVar(&opts.Generation, "generation", "", "Filter result by Pokemon generation (version group, e.g. yellow)")
	rootCmd.Flags().StringVarP(&opts.LogLevel, "level", "l", envOr(envLogLevel, "warn"), "The log level. Valid levels are debug, info, warn, and error.")
	rootCmd.Flags().StringVar(&opts.BaseURL, "base-url", envOr(envBaseURL, pokeapi.DefaultBaseURL), "The base url of the pokeapi.")
	rootCmd.Flags().IntVar(&opts.Concurrency, "concurrency", envIntOr(envConcurrency, lookup.DefaultConcurrency), "How many pokemon are fetched at once during a move type lookup. Needs to be greater than 0.")
	rootCmd.MarkFlagsMutuallyExclusive("lookup", "move-type")
	rootCmd.MarkFlagsOneRequired("lookup", "move-type")

	return rootCmd
}

func rootMain(cmd *cobra.Command, opts *RootOptions, logger *zap.Logger) error {
	req, err := lookup.NewRequest(opts.Lookup, opts.MoveType, opts.Generation)
	if err != nil {
		return err
	}

	client := pokeapi.NewClient(opts.BaseURL, http.DefaultClient, logger)
	cfg := lookup.Config{
		Out:         cmd.OutOrStdout(),
		Concurrency: opts.Concurrency,
	}
	if f, ok := cmd.ErrOrStderr().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		cfg.Progress = f
	}
	svc := lookup.NewService(client, logger, cfg)

	_, err = svc.Run(cmd.Context(), req)
	var exitErr *lookup.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return &lookup.ExitError{Code: lookup.ExitFailure, Err: err}
	}
	return err
}

// run executes the root command with args and reports any failure on stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *lookup.ExitError
	if !errors.As(err, &exitErr) {
		// anything cobra rejects before our hooks run is a usage problem
		err = &lookup.ExitError{Code: lookup.ExitUsage, Err: err}
	}
	fmt.Fprintf(stderr, "unexpected error %d: %s\n", lookup.ExitCode(err), err)
	if lookup.ExitCode(err) == lookup.ExitUsage {
		fmt.Fprint(stderr, rootCmd.UsageString())
	}
	return err
}

func Execute(ctx context.Context) {
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(lookup.ExitCode(err))
	}
}
