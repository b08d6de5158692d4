package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborwind/clientstate/internal/model"
	"github.com/harborwind/clientstate/internal/registry"
	"github.com/harborwind/clientstate/internal/service"
)

// newRootCmd builds the CLI surface. Subcommands do not call modules
// directly; each resolves its command name through the registry, the same
// path any external trigger takes.
func newRootCmd(reg *registry.Registry, state *service.State) *cobra.Command {
	var user string

	root := &cobra.Command{
		Use:           "clientstate",
		Short:         "Per-user client state for the Harborwind game client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if user != "" {
				state.SetActiveUser(user)
			}
		},
	}
	root.PersistentFlags().StringVar(&user, "user", "", "active user identifier")

	dispatch := func(name string) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			out, err := reg.Dispatch(cmd.Context(), name, args...)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Read a value for the active user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := reg.Dispatch(cmd.Context(), "storageGet", args...)
				if errors.Is(err, model.ErrNotFound) {
					// Absent is not a fault.
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Write a value for the active user",
			Args:  cobra.ExactArgs(2),
			RunE:  dispatch("storageSet"),
		},
		&cobra.Command{
			Use:   "remove <key>",
			Short: "Delete a value for the active user",
			Args:  cobra.ExactArgs(1),
			RunE:  dispatch("storageRemove"),
		},
		&cobra.Command{
			Use:   "derive <key>",
			Short: "Show the physical key for a logical key",
			Args:  cobra.ExactArgs(1),
			RunE:  dispatch("deriveKey"),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every entry belonging to the active user",
			Args:  cobra.NoArgs,
			RunE:  dispatch("clearUserStorage"),
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the active user identifier",
			Args:  cobra.NoArgs,
			RunE:  dispatch("whoami"),
		},
		&cobra.Command{
			Use:   "debug [true|false]",
			Short: "Read or set the debug-mode flag",
			Args:  cobra.MaximumNArgs(1),
			RunE:  dispatch("debugMode"),
		},
		&cobra.Command{
			Use:   "commands",
			Short: "List bound command names",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, name := range reg.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			},
		},
	)

	return root
}
