package main

import (
	"errors"
	"fmt"

	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/spf13/cobra"
)

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Merge records with the sync store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.session.Sync == nil {
				return errors.Join(errorvalues.ErrSyncNotConfigured, errors.New("pass --redis or set REDIS_ADDR"))
			}
			result, err := a.session.Sync.Sync(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			summary := fmt.Sprintf("%d check-ins, %d rest days", len(result.Data.CheckIns), len(result.Data.Holidays))
			if !result.Synced {
				puts(w, Error.Render("sync store unreachable, kept local records: "+summary))
				return nil
			}
			puts(w, Success.Render("synced: "+summary))
			return nil
		},
	}
}
