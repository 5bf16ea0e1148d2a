package main

import (
	"github.com/spf13/cobra"

	"github.com/docfield/docfield/internal/docpkg"
)

func init() {
	rootCmd.AddCommand(unpackCmd)
}

var unpackCmd = &cobra.Command{
	Use:   "unpack <docx> <dir>",
	Short: "Unpack a .docx container into a directory",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnpack,
}

// UnpackResponse reports an unpack destination.
type UnpackResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

func runUnpack(cmd *cobra.Command, args []string) error {
	if err := docpkg.Unpack(args[0], args[1]); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if humanOutput {
		outputHuman("Unpacked %s into %s\n", args[0], args[1])
		return nil
	}
	return outputJSON(UnpackResponse{Status: "unpacked", Path: args[1]})
}
