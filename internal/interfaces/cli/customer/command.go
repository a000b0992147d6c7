package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	complaintusecases "skylink/internal/application/complaint/usecases"
	subdto "skylink/internal/application/subscription/dto"
	subusecases "skylink/internal/application/subscription/usecases"
	"skylink/internal/interfaces/cli/cmdutil"
	"skylink/internal/shared/utils"
)

// NewCommand returns the customer dashboard command group.
func NewCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customer",
		Aliases: []string{"me"},
		Short:   "Customer dashboard: plans, subscription and complaints",
	}

	cmd.AddCommand(
		newOverviewCommand(opts),
		newPlansCommand(opts),
		newPlanCommand(opts),
		newSubscribeCommand(opts),
		newComplaintsCommand(opts),
		newComplainCommand(opts),
		newFAQCommand(opts),
	)
	return cmd
}

func newOverviewCommand(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the current plan and available plans",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			ov, err := rt.UseCases.CustomerOverview.Execute(ctx, rt.Holder)
			if err != nil {
				return err
			}
			return printOverview(rt, ov)
		}),
	}
}

func printOverview(rt *cmdutil.Runtime, ov *subdto.CustomerOverviewDTO) error {
	fmt.Fprintf(rt.Out, "Welcome, %s\n\n", ov.Email)
	if err := cmdutil.Fields(rt.Out,
		[2]string{"Current Plan", ov.CurrentPlan.PlanName},
		[2]string{"Days Left", ov.CurrentPlan.DaysLeft},
		[2]string{"Data Remaining", ov.CurrentPlan.DataRemaining},
		[2]string{"Valid Until", ov.CurrentPlan.ValidUntil},
	); err != nil {
		return err
	}
	fmt.Fprintf(rt.Out, "\n%s: skylink customer plans\n\n", ov.QuickAction)
	return cmdutil.Plans(rt.Out, ov.Plans)
}

func newPlansCommand(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List plans available for subscription",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			plans, err := rt.UseCases.AvailablePlans.Execute(ctx, rt.Holder)
			if err != nil {
				return err
			}
			return cmdutil.Plans(rt.Out, plans)
		}),
	}
}

func newPlanCommand(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <id>",
		Short: "Show plan details and subscription dates",
		Args:  cobra.ExactArgs(1),
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, args []string) error {
			id, err := utils.ParseID(args[0], "plan")
			if err != nil {
				return err
			}
			details, err := rt.UseCases.PlanDetails.Execute(ctx, rt.Holder, id)
			if err != nil {
				return err
			}
			return printDetails(rt, details)
		}),
	}
}

func printDetails(rt *cmdutil.Runtime, d *subdto.PlanDetailsDTO) error {
	return cmdutil.Fields(rt.Out,
		[2]string{"Plan", d.Plan.Name},
		[2]string{"Description", d.Plan.Description},
		[2]string{"Price", d.Plan.PriceLabel},
		[2]string{"Validity", d.DurationLabel},
		[2]string{"Start Date", d.StartDate},
		[2]string{"End Date", d.EndDate},
	)
}

func newSubscribeCommand(opts *cmdutil.Options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "subscribe <plan-id>",
		Short: "Subscribe to a plan",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	cmd.RunE = cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, args []string) error {
		id, err := utils.ParseID(args[0], "plan")
		if err != nil {
			return err
		}

		if !yes {
			details, err := rt.UseCases.PlanDetails.Execute(ctx, rt.Holder, id)
			if err != nil {
				return err
			}
			if err := printDetails(rt, details); err != nil {
				return err
			}
			answer, err := cmdutil.NewPrompter(rt.Out, cmd.InOrStdin()).Line("\n" + details.ConfirmLabel + "? [y/N] ")
			if err != nil {
				return err
			}
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Fprintln(rt.Out, "Cancelled")
				return nil
			}
		}

		result, err := rt.UseCases.Subscribe.Execute(ctx, rt.Holder, subusecases.SubscribeCommand{PlanID: id})
		if err != nil {
			return err
		}
		fmt.Fprintf(rt.Out, "%s\n\n", result.Message)
		if result.Overview == nil {
			return nil
		}
		return printOverview(rt, result.Overview)
	})
	return cmd
}

func newComplaintsCommand(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "complaints",
		Short: "List your complaints, newest first",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			complaints, err := rt.UseCases.MyComplaints.Execute(ctx, rt.Holder)
			if err != nil {
				return err
			}
			if len(complaints) == 0 {
				fmt.Fprintln(rt.Out, "No complaints submitted yet.")
				return nil
			}
			return cmdutil.Complaints(rt.Out, complaints)
		}),
	}
}

func newComplainCommand(opts *cmdutil.Options) *cobra.Command {
	var cmdArgs complaintusecases.SubmitComplaintCommand

	cmd := &cobra.Command{
		Use:   "complain",
		Short: "Submit a complaint",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&cmdArgs.Subject, "subject", "s", "", "Short summary")
	cmd.Flags().StringVarP(&cmdArgs.Description, "description", "d", "", "What went wrong")
	cmd.Flags().StringVarP(&cmdArgs.Priority, "priority", "p", "MEDIUM", "LOW, MEDIUM or HIGH")

	cmd.RunE = cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
		result, err := rt.UseCases.SubmitComplaint.Execute(ctx, rt.Holder, cmdArgs)
		if err != nil {
			return err
		}
		fmt.Fprintln(rt.Out, result.Message)
		return nil
	})
	return cmd
}

func newFAQCommand(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "faq",
		Short: "Show help and frequently asked questions",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			faq, err := rt.UseCases.FAQ.Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(rt.Out, faq.Markdown)
			return nil
		}),
	}
}
