package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/navstore/internal/bridge"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Read and save the user profile",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the saved user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileGet(cmd, a)
		},
	})

	var name, email string
	set := &cobra.Command{
		Use:   "set",
		Short: "Save the user profile",
		Long: `Set saves the single user profile. A flag that is not given is sent as
absent: a missing name is stored as "Invitado" and a missing email as "".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs := map[string]any{}
			if cmd.Flags().Changed("name") {
				callArgs["name"] = name
			}
			if cmd.Flags().Changed("email") {
				callArgs["email"] = email
			}
			return runProfileSet(cmd, a, callArgs)
		},
	}
	set.Flags().StringVar(&name, "name", "", "profile name")
	set.Flags().StringVar(&email, "email", "", "profile email")
	cmd.AddCommand(set)

	return cmd
}

func runProfileGet(cmd *cobra.Command, a *app) error {
	s := a.newSession()
	defer s.close()

	value, err := s.invoke(cmd.Context(), bridge.MethodGetUserProfile, nil)
	if err != nil {
		return err
	}

	if a.flags.jsonMode {
		return printJSON(cmd, value)
	}

	out := cmd.OutOrStdout()
	profile, ok := value.(map[string]any)
	if !ok {
		fmt.Fprintln(out, "no profile saved")
		return nil
	}
	fmt.Fprintf(out, "%s  %v\n%s %v\n", labelColor.Sprint("name:"), profile["name"], labelColor.Sprint("email:"), profile["email"])
	return nil
}

func runProfileSet(cmd *cobra.Command, a *app, args map[string]any) error {
	s := a.newSession()
	defer s.close()

	if _, err := s.invoke(cmd.Context(), bridge.MethodSaveUserProfile, args); err != nil {
		return err
	}

	printDone(cmd, "profile saved")
	return nil
}
