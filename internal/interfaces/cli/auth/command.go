package auth

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skylink/internal/application/user/usecases"
	"skylink/internal/domain/user"
	"skylink/internal/interfaces/cli/cmdutil"
	"skylink/internal/shared/utils"
)

// NewCommands returns login, signup, logout and whoami.
func NewCommands(opts *cmdutil.Options) []*cobra.Command {
	return []*cobra.Command{
		newLoginCommand(opts),
		newSignupCommand(opts),
		newLogoutCommand(opts),
		newWhoamiCommand(opts),
	}
}

func newLoginCommand(opts *cmdutil.Options) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the SkyLink portal",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")

	cmd.RunE = cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
		p := cmdutil.NewPrompter(rt.Out, cmd.InOrStdin())
		addr, err := p.ValueOr(email, "Email: ")
		if err != nil {
			return err
		}
		password, err := p.Secret("Password: ")
		if err != nil {
			return err
		}

		result, err := rt.UseCases.Login.Execute(ctx, rt.Holder, usecases.LoginWithPasswordCommand{
			Email:    addr,
			Password: password,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(rt.Out, usecases.MsgLoginSucceeded)
		return cmdutil.Fields(rt.Out,
			[2]string{"Email", result.Session.Email},
			[2]string{"Role", result.Session.Role.String()},
			[2]string{"Home", result.Redirect},
		)
	})
	return cmd
}

func newSignupCommand(opts *cmdutil.Options) *cobra.Command {
	var req user.Registration

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a customer account",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email")
	cmd.Flags().StringVar(&req.MobileNumber, "mobile", "", "10-digit mobile number")

	cmd.RunE = cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
		p := cmdutil.NewPrompter(rt.Out, cmd.InOrStdin())
		var err error
		if req.Name, err = p.ValueOr(req.Name, "Full name: "); err != nil {
			return err
		}
		if req.Email, err = p.ValueOr(req.Email, "Email: "); err != nil {
			return err
		}
		if req.MobileNumber, err = p.ValueOr(req.MobileNumber, "Mobile number: "); err != nil {
			return err
		}
		if req.Password, err = p.Secret("Password: "); err != nil {
			return err
		}
		if req.ConfirmPassword, err = p.Secret("Confirm password: "); err != nil {
			return err
		}

		if err := rt.UseCases.Signup.Execute(ctx, req); err != nil {
			return err
		}
		fmt.Fprintln(rt.Out, usecases.MsgSignupSucceeded)
		return nil
	})
	return cmd
}

func newLogoutCommand(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			if _, err := rt.UseCases.Logout.Execute(ctx, rt.Holder); err != nil {
				return err
			}
			fmt.Fprintln(rt.Out, "Logged out")
			return nil
		}),
	}
}

func newWhoamiCommand(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: cmdutil.Exec(opts, func(ctx context.Context, rt *cmdutil.Runtime, _ []string) error {
			profile, err := rt.UseCases.Profile.Execute(ctx, rt.Holder)
			if err != nil {
				return err
			}
			return cmdutil.Fields(rt.Out,
				[2]string{"Name", profile.Name},
				[2]string{"Email", profile.Email},
				[2]string{"Mobile", orNA(profile.MobileNumber)},
				[2]string{"Role", profile.Role},
				[2]string{"Joined", profile.JoinedOn},
			)
		}),
	}
}

func orNA(s string) string {
	if s == "" {
		return utils.NotApplicable
	}
	return s
}
