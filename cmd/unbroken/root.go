package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/limbo/unbroken/internal/repository"
	"github.com/limbo/unbroken/internal/service"
	"github.com/limbo/unbroken/pkg/config"
	"github.com/spf13/cobra"
)

// app holds what the subcommands share. The session is opened in
// PersistentPreRunE.
type app struct {
	dbPath    string
	identity  string
	redisAddr string

	sessions *service.SessionManager
	session  *service.Session
}

func defaultDBPath(cfg *config.Config) string {
	if path := cfg.GetString("SQLITE_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".unbroken", "unbroken.db")
	}
	return filepath.Join(home, ".unbroken", "unbroken.db")
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "unbroken",
		Short: "Keep your gym streak unbroken",
		Long: `unbroken tracks gym check-ins and rest days on this device.

Sundays of the current month are marked as rest days automatically.
With --redis the records can be synced between devices.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd.Context(), cmd.OutOrStdout(), a)
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.dbPath, "db", defaultDBPath(cfg), "path of the local database")
	root.PersistentFlags().StringVar(&a.identity, "identity", cfg.GetString("UNBROKEN_IDENTITY"), "account the records belong to, empty for this device only")
	root.PersistentFlags().StringVar(&a.redisAddr, "redis", cfg.GetString("REDIS_ADDR"), "address of the sync store")

	root.AddCommand(
		newCheckInCmd(a),
		newUncheckCmd(a),
		newHolidayCmd(a),
		newListCmd(a),
		newStatsCmd(a),
		newSyncCmd(a),
	)
	return root
}

func (a *app) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	kv, err := repository.OpenSQLiteKV(a.dbPath)
	if err != nil {
		return err
	}
	opts := service.SessionOptions{KV: kv}
	if a.redisAddr != "" {
		opts.SyncStore = repository.NewRedisSyncStore(repository.RedisCfg{Address: a.redisAddr})
	}
	a.sessions = service.NewSessionManager(opts)
	a.session, err = a.sessions.Session(ctx, a.identity)
	return err
}

func (a *app) close() error {
	if a.sessions == nil {
		return nil
	}
	return a.sessions.Close()
}
