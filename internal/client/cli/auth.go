package cli

import (
	"context"

	"github.com/dmitrijs2005/boardkeeper/internal/client/session"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/spf13/cobra"
)

func saveSession(ctx context.Context, store SessionStore, resp *models.AuthResponse) error {
	return store.Save(ctx, session.Session{
		UserID:   resp.User.ID,
		UserName: resp.User.UserName,
		Token:    resp.Token,
	})
}

func newRegisterCommand(opts *RootOptions) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := opts.password(cmd, password)
			if err != nil {
				return err
			}
			return opts.run(cmd, false, func(ctx context.Context, svc Service, store SessionStore, _ session.Session) error {
				resp, err := svc.Register(ctx, username, email, pw)
				if err != nil {
					return err
				}
				if err := saveSession(ctx, store, resp); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp.User)
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "user name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLoginCommand(opts *RootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := opts.password(cmd, password)
			if err != nil {
				return err
			}
			return opts.run(cmd, false, func(ctx context.Context, svc Service, store SessionStore, _ session.Session) error {
				resp, err := svc.Login(ctx, username, pw)
				if err != nil {
					return err
				}
				if err := saveSession(ctx, store, resp); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp.User)
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "user name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.deps.OpenSession(cmd.Context(), opts.cfg.StatePath)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Clear(cmd.Context())
		},
	}
}

func newWhoamiCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, svc Service, _ SessionStore, sess session.Session) error {
				u, err := svc.GetUser(ctx, sess.UserID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), u)
			})
		},
	}
}
