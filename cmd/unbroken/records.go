package main

import (
	"context"
	"fmt"
	"io"

	"github.com/limbo/unbroken/pkg/calendar"
	"github.com/limbo/unbroken/pkg/entity"
	"github.com/spf13/cobra"
)

func newCheckInCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin [date]",
		Short: "Record a gym visit, today by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := calendar.TodayKey()
			if len(args) == 1 {
				date = args[0]
			}
			return runAdd(cmd.Context(), cmd.OutOrStdout(), a, entity.KindCheckIn, date)
		},
	}
}

func newUncheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uncheck <date>",
		Short: "Remove the check-in of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd.Context(), cmd.OutOrStdout(), a, entity.KindCheckIn, args[0])
		},
	}
}

func newHolidayCmd(a *app) *cobra.Command {
	holiday := &cobra.Command{
		Use:   "holiday",
		Short: "Manage rest days",
	}
	holiday.AddCommand(
		&cobra.Command{
			Use:   "add <date>",
			Short: "Mark a date as a rest day",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAdd(cmd.Context(), cmd.OutOrStdout(), a, entity.KindHoliday, args[0])
			},
		},
		&cobra.Command{
			Use:     "rm <date>",
			Aliases: []string{"remove"},
			Short:   "Unmark a rest day",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRemove(cmd.Context(), cmd.OutOrStdout(), a, entity.KindHoliday, args[0])
			},
		},
	)
	return holiday
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "list [checkins|holidays]",
		Short:     "List recorded dates, newest first",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"checkins", "holidays"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := entity.KindCheckIn
			if len(args) == 1 && args[0] == "holidays" {
				kind = entity.KindHoliday
			}
			printRecords(cmd.OutOrStdout(), kind, a.session.Store.Snapshot().Records(kind))
			return nil
		},
	}
}

func label(kind entity.RecordKind) string {
	if kind == entity.KindHoliday {
		return "rest day"
	}
	return "check-in"
}

func runAdd(ctx context.Context, w io.Writer, a *app, kind entity.RecordKind, date string) error {
	added, err := a.session.Store.Add(ctx, kind, date)
	if err != nil {
		return err
	}
	if !added {
		puts(w, Muted.Render(fmt.Sprintf("%s on %s already recorded", label(kind), date)))
		return nil
	}
	puts(w, Success.Render(fmt.Sprintf("%s recorded for %s", label(kind), date)))
	return nil
}

func runRemove(ctx context.Context, w io.Writer, a *app, kind entity.RecordKind, date string) error {
	if err := a.session.Store.Remove(ctx, kind, date); err != nil {
		return err
	}
	puts(w, Success.Render(fmt.Sprintf("%s removed for %s", label(kind), date)))
	return nil
}

func printRecords(w io.Writer, kind entity.RecordKind, records []entity.Record) {
	if len(records) == 0 {
		puts(w, Muted.Render("no "+label(kind)+"s yet"))
		return
	}
	for _, r := range records {
		puts(w, "  "+r.Date)
	}
}
