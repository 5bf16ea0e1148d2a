// Package main provides the docfield CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "docfield",
	Short: "Inject Zotero field codes into Word manuscripts",
	Long: `docfield turns plain [N] citations in a Word manuscript into Zotero-
compatible complex field codes and wraps the bibliography in a matching
field, so citations behave like real reference-manager output.

Typical workflow:
  docfield unpack paper.docx unpacked/
  docfield fetch --input refs_input.json --output references.json
  docfield inject --unpacked unpacked/ --refs references.json
  docfield pack unpacked/ paper-out.docx

All commands output JSON by default for easy scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
