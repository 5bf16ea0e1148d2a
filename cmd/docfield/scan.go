package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docfield/docfield/internal/pdfdoi"
	"github.com/docfield/docfield/internal/reference"
)

var scanOutput string

func init() {
	scanCmd.Flags().StringVar(&scanOutput, "output", "", "Write refs input JSON to this file instead of stdout")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <pdf-or-dir>...",
	Short: "Extract DOIs from PDFs to seed a refs input file",
	Long: `Extract DOIs from PDFs to seed a refs input file.

Each PDF becomes one numbered entry, in filename order. Entries whose
PDF yields no DOI keep an empty doi and rely on their fallback text.

Usage:
  docfield scan pdfs/ --output refs_input.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

// ScanResponse summarizes a scan run.
type ScanResponse struct {
	Entries int    `json:"entries"`
	WithDOI int    `json:"with_doi"`
	Output  string `json:"output,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	paths, err := collectPDFs(args)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if len(paths) == 0 {
		exitWithError(ExitError, "no PDF files found")
	}

	inputs := make([]reference.InputRef, 0, len(paths))
	withDOI := 0
	for i, path := range paths {
		doi, err := pdfdoi.ExtractDOI(path)
		if err != nil {
			// An unreadable PDF still gets a fallback entry
			doi = ""
		}
		if doi != "" {
			withDOI++
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		inputs = append(inputs, reference.InputRef{
			ID:       i + 1,
			DOI:      doi,
			Fallback: base,
		})
	}

	data, err := json.MarshalIndent(inputs, "", "  ")
	if err != nil {
		exitWithError(ExitError, "encoding refs input: %v", err)
	}
	data = append(data, '\n')

	if scanOutput == "" {
		os.Stdout.Write(data)
		return nil
	}
	if err := os.WriteFile(scanOutput, data, 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", scanOutput, err)
	}

	if humanOutput {
		outputHuman("Scanned %d PDFs, %d with a DOI\n", len(inputs), withDOI)
		return nil
	}
	return outputJSON(ScanResponse{Entries: len(inputs), WithDOI: withDOI, Output: scanOutput})
}

// collectPDFs expands files and directories into a sorted list of PDF paths.
func collectPDFs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}
