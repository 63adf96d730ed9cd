package cli

import (
	"github.com/spf13/cobra"
)

// NewSessionCommand creates the session command group.
func NewSessionCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Register, sign in, sign out or show the current actor",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in actor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := opts.client().CurrentActor(cmd.Context())
			if err != nil {
				return err
			}
			return newPrinter(cmd, opts).actor(actor)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "register <display-name> <email>",
		Short: "Register a new actor and sign it in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := opts.client().Register(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return newPrinter(cmd, opts).actor(actor)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sign-in <email>",
		Short: "Sign in by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := opts.client().SignIn(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return newPrinter(cmd, opts).actor(actor)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sign-out",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().SignOut(cmd.Context()); err != nil {
				return err
			}
			return newPrinter(cmd, opts).actor(nil)
		},
	})

	return cmd
}
