package main

import (
	"github.com/spf13/cobra"

	"github.com/docfield/docfield/internal/docpkg"
)

func init() {
	rootCmd.AddCommand(packCmd)
}

var packCmd = &cobra.Command{
	Use:   "pack <dir> <docx>",
	Short: "Repack an unpacked directory into a .docx container",
	Args:  cobra.ExactArgs(2),
	RunE:  runPack,
}

// PackResponse reports a pack destination.
type PackResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

func runPack(cmd *cobra.Command, args []string) error {
	if err := docpkg.Pack(args[0], args[1]); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if humanOutput {
		outputHuman("Packed %s into %s\n", args[0], args[1])
		return nil
	}
	return outputJSON(PackResponse{Status: "packed", Path: args[1]})
}
