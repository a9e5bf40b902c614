package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/navstore/internal/bridge"
)

func newCallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <method> [args-json]",
		Short: "Send one raw method call over the db channel",
		Long: `Call sends a method call to the db channel handler and prints the encoded
reply envelope: [value] on success, [code, message, details] on failure.

Example:
  navstore call getFavorites
  navstore call saveUserProfile '{"name":"Ana","email":"a@x.com"}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, a, args)
		},
	}
}

func runCall(cmd *cobra.Command, a *app, args []string) error {
	var rawArgs string
	if len(args) == 2 {
		rawArgs = args[1]
	}
	data, err := requestJSON(args[0], rawArgs)
	if err != nil {
		return userError("invalid args JSON: %s", err)
	}
	call, err := bridge.DecodeMethodCall(data)
	if err != nil {
		return userError("%w", err)
	}

	s := a.newSession()
	defer s.close()

	resp, raw, err := s.call(cmd.Context(), call)
	if err != nil {
		return sysError("%s", err)
	}
	if len(raw) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	}
	return replyError(call.Method, resp)
}

// requestJSON assembles the {"method", "args"} wire form of a call typed on
// the command line. args is raw JSON and may be empty.
func requestJSON(method, args string) ([]byte, error) {
	req := struct {
		Method string          `json:"method"`
		Args   json.RawMessage `json:"args,omitempty"`
	}{Method: method}
	if args != "" {
		req.Args = json.RawMessage(args)
	}
	return json.Marshal(req)
}
