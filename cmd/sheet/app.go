package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

var (
	storageFlag string
	sqlitePath  string
	redisAddr   string
	storageKey  string
	logLevel    string
	assumeYes   bool
)

func init() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})
}

// exactArgs is cobra.ExactArgs with a usage error code
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, cmd.UseLine())
		}
		return nil
	}
}

// minimumArgs is cobra.MinimumNArgs with a usage error code
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, cmd.UseLine())
		}
		return nil
	}
}

// loadConfig reads the environment and applies the global flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("storage") {
		cfg.Storage = config.Storage(storageFlag)
	}
	if flags.Changed("db") {
		cfg.SQLitePath = sqlitePath
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("key") {
		cfg.StorageKey = storageKey
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openRepository builds the configured backend. The returned func releases
// the underlying connection.
func openRepository(ctx context.Context, cfg *config.Config) (sheetrepo.Repository, func(), error) {
	switch cfg.Storage {
	case config.StorageRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				slog.Warn("failed to close redis client", "error", err)
			}
		}
		if err := redisclient.Ping(ctx, client); err != nil {
			closeClient()
			return nil, nil, errors.Wrap(err, "redis unavailable").WithMeta("addr", cfg.RedisAddr)
		}

		repo, err := sheetrepo.NewRedis(&sheetrepo.RedisConfig{
			Client: client,
			Key:    cfg.StorageKey,
		})
		if err != nil {
			closeClient()
			return nil, nil, err
		}
		return repo, closeClient, nil

	default:
		db, err := sheetrepo.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				slog.Warn("failed to close sqlite db", "error", err)
			}
		}

		repo, err := sheetrepo.NewSQLite(ctx, &sheetrepo.SQLiteConfig{
			DB:  db,
			Key: cfg.StorageKey,
		})
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		return repo, closeDB, nil
	}
}

// openSession wires the session for one command and opens the record
func openSession(cmd *cobra.Command) (*sheet.Session, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx := cmd.Context()
	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	var confirmer sheet.Confirmer = newPromptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
	if assumeYes {
		confirmer = autoConfirmer{}
	}

	session, err := sheet.New(&sheet.Config{
		Repository:  repo,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID(),
		Roller:      dice.DefaultRoller,
		Confirmer:   confirmer,
	})
	if err != nil {
		closeRepo()
		return nil, nil, err
	}

	out, err := session.Open(ctx)
	if err != nil {
		closeRepo()
		return nil, nil, err
	}

	slog.DebugContext(ctx, "session ready",
		"storage", cfg.Storage,
		"key", cfg.StorageKey,
		"source", out.Source)

	return session, closeRepo, nil
}

type sessionFunc func(ctx context.Context, s *sheet.Session) (*sheet.Result, error)

// mutate opens the session, runs fn and reports the result
func mutate(cmd *cobra.Command, fn sessionFunc) error {
	s, done, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer done()

	result, err := fn(cmd.Context(), s)
	if err != nil {
		return err
	}
	report(cmd, result)
	return nil
}

// report prints the outcome of a mutation followed by a one-line status
func report(cmd *cobra.Command, result *sheet.Result) {
	out := cmd.OutOrStdout()

	switch {
	case result.Declined:
		fmt.Fprintln(out, "Cancelado; nada foi alterado.")
		return
	case result.Warning != "":
		fmt.Fprintln(out, result.Warning)
	}
	if result.Unsaved {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: change applied but could not be saved")
	}

	fmt.Fprintln(out, statusLine(result.Character))
}
