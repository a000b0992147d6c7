package admin

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"skylink/internal/application/admin/dto"
	"skylink/internal/application/admin/usecases"
	"skylink/internal/domain/complaint"
	"skylink/internal/interfaces/cli/cmdutil"
	"skylink/internal/shared/utils"
)

// NewCommand returns the admin dashboard command group.
func NewCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin dashboard: analytics, customers, complaints and plans",
	}

	cmd.AddCommand(
		newOverviewCommand(opts),
		newCustomersCommand(opts),
		newComplaintsCommand(opts),
		newResolveCommand(opts),
		newPlansCommand(opts),
		newWatchCommand(opts),
	)
	return cmd
}

func newOverviewCommand(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show analytics, plan distribution and recent activity",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			ov, err := rt.UseCases.AdminOverview.Execute(ctx, rt.Holder)
			if err != nil {
				return err
			}
			return printOverview(rt, ov)
		}),
	}
}

func printOverview(rt *cmdutil.Runtime, ov *dto.AdminOverviewDTO) error {
	a := ov.Analytics
	active := strconv.FormatInt(a.ActiveCustomers, 10)
	if ov.ActiveFromTags {
		active += " (estimated)"
	}
	if err := cmdutil.Fields(rt.Out,
		[2]string{"Total Customers", strconv.Itoa(a.TotalCustomers)},
		[2]string{"Active Subscriptions", active},
		[2]string{"Total Complaints", strconv.Itoa(a.TotalComplaints)},
		[2]string{"Pending Issues", strconv.Itoa(a.PendingIssues)},
	); err != nil {
		return err
	}

	fmt.Fprintln(rt.Out, "\nPlan Distribution")
	buckets := make([][]string, 0, len(ov.PlanDistribution))
	for _, b := range ov.PlanDistribution {
		buckets = append(buckets, []string{b.Label, strconv.Itoa(b.Count)})
	}
	if err := cmdutil.Table(rt.Out, []string{"PLAN", "CUSTOMERS"}, buckets); err != nil {
		return err
	}

	fmt.Fprintf(rt.Out, "\nComplaint Status: %d pending, %d resolved\n", ov.ComplaintStatus.Pending, ov.ComplaintStatus.Resolved)

	fmt.Fprintln(rt.Out, "\nRecent Customers")
	recent := make([][]string, 0, len(ov.RecentCustomers))
	for _, u := range ov.RecentCustomers {
		recent = append(recent, []string{u.Name, u.Email, u.JoinedOn})
	}
	if err := cmdutil.Table(rt.Out, []string{"NAME", "EMAIL", "JOINED"}, recent); err != nil {
		return err
	}

	fmt.Fprintln(rt.Out, "\nRecent Complaints")
	return cmdutil.Complaints(rt.Out, ov.RecentComplaints)
}

func newCustomersCommand(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "customers",
		Short: "List customers with their plan and status",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			customers, err := rt.UseCases.Customers.Execute(ctx, rt.Holder)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(customers))
			for _, c := range customers {
				rows = append(rows, []string{
					strconv.FormatUint(uint64(c.ID), 10),
					c.Name,
					c.Email,
					c.MobileNumber,
					c.Plan,
					c.Status,
					c.JoinedOn,
					c.LastUpdated,
				})
			}
			return cmdutil.Table(rt.Out, []string{"ID", "NAME", "EMAIL", "MOBILE", "PLAN", "STATUS", "JOINED", "UPDATED"}, rows)
		}),
	}
}

func newComplaintsCommand(opts *cmdutil.Options) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "complaints",
		Short: "List complaints",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			list, err := rt.UseCases.Complaints.Execute(ctx, rt.Holder, usecases.ListComplaintsQuery{
				Filter: complaint.ParseFilter(filter),
			})
			if err != nil {
				return err
			}
			return printComplaintList(rt, list)
		}),
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(complaint.FilterAll), "ALL, PENDING or RESOLVED")
	return cmd
}

func printComplaintList(rt *cmdutil.Runtime, list *dto.ComplaintListDTO) error {
	fmt.Fprintf(rt.Out, "%s: %d pending, %d resolved\n\n", list.Filter, list.Counts.Pending, list.Counts.Resolved)
	return cmdutil.Complaints(rt.Out, list.Complaints)
}

func newResolveCommand(opts *cmdutil.Options) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "resolve <complaint-id>",
		Short: "Mark a complaint resolved",
		Args:  cobra.ExactArgs(1),
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, args []string) error {
			id, err := utils.ParseID(args[0], "complaint")
			if err != nil {
				return err
			}
			list, err := rt.UseCases.ResolveComplaint.Execute(ctx, rt.Holder, usecases.ResolveComplaintCommand{
				ComplaintID: id,
				Filter:      complaint.ParseFilter(filter),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(rt.Out, "Complaint %d resolved\n\n", id)
			return printComplaintList(rt, list)
		}),
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(complaint.FilterAll), "List to show afterwards")
	return cmd
}

func confirm(rt *cmdutil.Runtime, cmd *cobra.Command, question string) (bool, error) {
	answer, err := cmdutil.NewPrompter(rt.Out, cmd.InOrStdin()).Line(question + " [y/N] ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}
