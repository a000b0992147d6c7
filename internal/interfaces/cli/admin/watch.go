package admin

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"skylink/internal/infrastructure/scheduler"
	"skylink/internal/interfaces/cli/cmdutil"
)

// newWatchCommand re-renders the overview on a cron schedule until
// interrupted. A run that outlasts the interval is skipped, not queued.
func newWatchCommand(opts *cmdutil.Options) *cobra.Command {
	var schedule string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Refresh the overview periodically",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			if schedule == "" {
				schedule = rt.Config.Analytics.RefreshSchedule
			}
			if err := scheduler.ValidateSpec(schedule); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			// The first render also surfaces auth errors before anything is scheduled.
			if err := refresh(ctx, rt); err != nil {
				return err
			}

			m := scheduler.NewSchedulerManager(rt.Log.Named("watch"))
			var id cron.EntryID
			id, err := m.Register("admin-overview", schedule, func(jobCtx context.Context) error {
				if err := refresh(jobCtx, rt); err != nil {
					return err
				}
				fmt.Fprintf(rt.Out, "\nNext refresh %s\n", humanize.Time(m.NextRun(id)))
				return nil
			})
			if err != nil {
				return err
			}
			m.Start()
			fmt.Fprintf(rt.Out, "\nNext refresh %s (Ctrl+C to stop)\n", humanize.Time(m.NextRun(id)))

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return m.Stop(shutdownCtx)
		}),
	}
	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron spec, defaults to analytics.refresh_schedule")
	return cmd
}

func refresh(ctx context.Context, rt *cmdutil.Runtime) error {
	ov, err := rt.UseCases.AdminOverview.Execute(ctx, rt.Holder)
	if err != nil {
		return err
	}
	fmt.Fprintf(rt.Out, "\n== %s ==\n", time.Now().Format("02 Jan 2006 15:04:05"))
	return printOverview(rt, ov)
}
