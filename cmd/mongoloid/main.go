// Command mongoloid loads election results into MongoDB.
//
// It must be started from a directory named assembly, dail or westminster
// that contains a constituencies/ sub-directory. Every file in each
// constituencies/<group>/ directory is decoded as one area result and the
// whole set is written to the "area" collection with a single bulk insert.
//
// Flags:
//
//	-d, --database  name of database to build (default: <election>_<hash>)
//
// Environment: MONGO_URI, MONGO_CONNECT_TIMEOUT, LOG_LEVEL, LOG_FORMAT.
// A .env file in the working directory is read if present.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mongoloid/internal/config"
	"mongoloid/internal/election"
	"mongoloid/internal/ingest"
	"mongoloid/internal/logger"
	mdb "mongoloid/internal/mongo"
)

func init() {
	_ = godotenv.Load() // .env is optional
}

type runFunc func(ctx context.Context, cfg config.Config, out io.Writer) error

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(run).ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "[mongoloid] %v. Exiting.\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(fn runFunc) *cobra.Command {
	var database string

	cmd := &cobra.Command{
		Use:           "mongoloid",
		Short:         "Mongoloid election database builder",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.Database = database
			return fn(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&database, "database", "d", "", "name of database to build (optional)")
	return cmd
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat).With(slog.String("run", uuid.NewString()))

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	target, err := election.Resolve(wd, cfg.Database, time.Now())
	if err != nil {
		return fmt.Errorf("current working directory %q: %w", wd, err)
	}
	log = log.With(slog.String("election", target.Kind.String()), slog.String("db", target.Name))
	log.Info("creating_database")

	mc, err := mdb.NewClient(ctx, cfg.MongoURI, target.Name, cfg.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("connect %s: %w", cfg.MongoURI, err)
	}
	defer mc.Close(context.Background())

	rep, err := ingest.Run(ctx, wd, mc, log)
	if err != nil {
		return err
	}

	rep.Render(out)
	color.New(color.FgGreen).Fprintf(out, "[mongoloid] Created database %q\n", mc.DatabaseName())
	return nil
}
