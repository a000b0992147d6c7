package admin

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	commondto "skylink/internal/application/common/dto"
	"skylink/internal/domain/plan"
	"skylink/internal/interfaces/cli/cmdutil"
	apperrors "skylink/internal/shared/errors"
	"skylink/internal/shared/utils"
)

func newPlansCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List and manage plans",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			list, err := rt.UseCases.Plans.List(ctx, rt.Holder)
			if err != nil {
				return err
			}
			return cmdutil.Plans(rt.Out, list.Plans)
		}),
	}

	cmd.AddCommand(
		newCreatePlanCommand(opts),
		newUpdatePlanCommand(opts),
		newTogglePlanCommand(opts),
		newDeletePlanCommand(opts),
	)
	return cmd
}

func bindPlanFlags(cmd *cobra.Command, in *plan.Input) {
	cmd.Flags().StringVar(&in.Name, "name", "", "Plan name")
	cmd.Flags().StringVar(&in.Description, "description", "", "Plan description")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "Price in rupees")
	cmd.Flags().IntVar(&in.DurationInDays, "days", 28, "Validity in days")
	cmd.Flags().Float64Var(&in.DataLimitGB, "data", 0, "Data allowance in GB")
	cmd.Flags().IntVar(&in.SpeedMbps, "speed", 0, "Speed in Mbps")
	cmd.Flags().BoolVar(&in.Active, "active", true, "Offer the plan to customers")
}

func newCreatePlanCommand(opts *cmdutil.Options) *cobra.Command {
	var in plan.Input

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a plan",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			list, err := rt.UseCases.Plans.Create(ctx, rt.Holder, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(rt.Out, "Plan %q created\n\n", in.Name)
			return cmdutil.Plans(rt.Out, list.Plans)
		}),
	}
	bindPlanFlags(cmd, &in)
	return cmd
}

// newUpdatePlanCommand seeds the form from the current plan so only the
// flags given change.
func newUpdatePlanCommand(opts *cmdutil.Options) *cobra.Command {
	var in plan.Input

	cmd := &cobra.Command{
		Use:   "update <plan-id>",
		Short: "Edit a plan",
		Args:  cobra.ExactArgs(1),
	}
	bindPlanFlags(cmd, &in)

	cmd.RunE = cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, args []string) error {
		id, err := utils.ParseID(args[0], "plan")
		if err != nil {
			return err
		}

		current, err := rt.UseCases.Plans.List(ctx, rt.Holder)
		if err != nil {
			return err
		}
		form, ok := seedForm(current.Plans, id)
		if !ok {
			return apperrors.NewNotFoundError(fmt.Sprintf("plan %d not found", id))
		}
		applyChangedFlags(cmd, &form, in)

		list, err := rt.UseCases.Plans.Update(ctx, rt.Holder, id, form)
		if err != nil {
			return err
		}
		fmt.Fprintf(rt.Out, "Plan %d updated\n\n", id)
		return cmdutil.Plans(rt.Out, list.Plans)
	})
	return cmd
}

func newTogglePlanCommand(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <plan-id>",
		Short: "Activate or deactivate a plan",
		Args:  cobra.ExactArgs(1),
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, args []string) error {
			id, err := utils.ParseID(args[0], "plan")
			if err != nil {
				return err
			}
			list, err := rt.UseCases.Plans.Toggle(ctx, rt.Holder, id)
			if err != nil {
				return err
			}
			return cmdutil.Plans(rt.Out, list.Plans)
		}),
	}
}

func newDeletePlanCommand(opts *cmdutil.Options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a plan",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	cmd.RunE = cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, args []string) error {
		id, err := utils.ParseID(args[0], "plan")
		if err != nil {
			return err
		}
		if !yes {
			ok, err := confirm(rt, cmd, "Are you sure you want to delete this plan?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(rt.Out, "Cancelled")
				return nil
			}
		}

		list, err := rt.UseCases.Plans.Delete(ctx, rt.Holder, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(rt.Out, "Plan %d deleted\n\n", id)
		return cmdutil.Plans(rt.Out, list.Plans)
	})
	return cmd
}

func seedForm(plans []commondto.PlanDTO, id uint) (plan.Input, bool) {
	for _, p := range plans {
		if p.ID == id {
			return plan.Input{
				Name:           p.Name,
				Description:    p.Description,
				Price:          p.Price,
				DurationInDays: p.DurationInDays,
				DataLimitGB:    p.DataLimitGB,
				SpeedMbps:      p.SpeedMbps,
				Active:         p.Active,
			}, true
		}
	}
	return plan.Input{}, false
}

func applyChangedFlags(cmd *cobra.Command, form *plan.Input, in plan.Input) {
	flags := cmd.Flags()
	if flags.Changed("name") {
		form.Name = in.Name
	}
	if flags.Changed("description") {
		form.Description = in.Description
	}
	if flags.Changed("price") {
		form.Price = in.Price
	}
	if flags.Changed("days") {
		form.DurationInDays = in.DurationInDays
	}
	if flags.Changed("data") {
		form.DataLimitGB = in.DataLimitGB
	}
	if flags.Changed("speed") {
		form.SpeedMbps = in.SpeedMbps
	}
	if flags.Changed("active") {
		form.Active = in.Active
	}
}
