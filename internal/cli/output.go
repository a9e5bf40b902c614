package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Colors are dropped automatically when stdout is not a terminal.
var (
	successColor = color.New(color.FgGreen)
	labelColor   = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
)

// printJSON writes value as indented JSON.
func printJSON(cmd *cobra.Command, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return sysError("marshal output: %s", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// printDone reports a completed mutation.
func printDone(cmd *cobra.Command, msg string) {
	successColor.Fprintln(cmd.OutOrStdout(), msg)
}
