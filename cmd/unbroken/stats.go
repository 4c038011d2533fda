package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/limbo/unbroken/internal/stats"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show streaks and this week/month progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd.Context(), cmd.OutOrStdout(), a)
		},
	}
}

func runStats(_ context.Context, w io.Writer, a *app) error {
	now := time.Now()
	st := a.session.Store.Stats(now)
	progress := stats.ComputeProgress(st, now)

	puts(w, Banner.Render(Title.Render("Unbroken")))
	if a.session.Store.HasCheckedInToday() {
		puts(w, Success.Render("  checked in today"))
	} else {
		puts(w, Muted.Render("  not checked in yet today"))
	}
	kv(w, "Current streak", fmt.Sprintf("%d days", st.CurrentStreak))
	kv(w, "Longest streak", fmt.Sprintf("%d days", st.LongestStreak))
	kv(w, "Total check-ins", st.TotalCheckIns)
	kv(w, "This week", fmt.Sprintf("%d (%d rest) %d%%", st.ThisWeekCheckIns, st.ThisWeekHolidays, progress.WeekPercent))
	kv(w, "This month", fmt.Sprintf("%d (%d rest) %d%%", st.ThisMonthCheckIns, st.ThisMonthHolidays, progress.MonthPercent))
	return nil
}
