package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"dashkit/internal/domain/models"
	"dashkit/internal/utils"
)

func newUsersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage dashboard accounts",
	}
	cmd.AddCommand(newUsersListCmd(opts), newUsersAddCmd(opts))
	return cmd
}

func newUsersListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a, err := bootstrap(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			if cfg.Auth.SeedDemo {
				if err := a.auth().SeedDemoUsers(cmd.Context()); err != nil {
					return err
				}
			}
			accounts, err := a.users.List(cmd.Context())
			if err != nil {
				return err
			}
			t := table.New().Border(lipgloss.NormalBorder()).Headers("ID", "Username", "Name", "Email", "Role", "Created")
			for _, acc := range accounts {
				t.Row(string(acc.ID), acc.Username, acc.Name, acc.Email, string(acc.Role), utils.FormatDate(acc.CreatedAt))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func newUsersAddCmd(opts *rootOptions) *cobra.Command {
	var in models.SignupInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a member account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a, err := bootstrap(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			svc := a.auth()
			svc.SignupLatency = 0
			user, err := svc.Signup(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "display name")
	f.StringVar(&in.Email, "email", "", "email address")
	f.StringVar(&in.Username, "username", "", "login name, defaults to the email local part")
	f.StringVar(&in.Password, "password", "", "password, at least 6 characters")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
