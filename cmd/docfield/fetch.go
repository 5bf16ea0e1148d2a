package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/docfield/docfield/internal/config"
	"github.com/docfield/docfield/internal/crossref"
	"github.com/docfield/docfield/internal/reference"
)

var (
	fetchInput   string
	fetchOutput  string
	fetchStyle   string
	fetchFormat  string
	fetchMailto  string
	fetchNoCache bool
)

func init() {
	fetchCmd.Flags().StringVar(&fetchInput, "input", "", "Input JSON file with DOIs and fallbacks")
	fetchCmd.Flags().StringVar(&fetchOutput, "output", "", "Output file path")
	fetchCmd.Flags().StringVar(&fetchStyle, "style", "", "Citation style: vancouver, apa, nature (default vancouver)")
	fetchCmd.Flags().StringVar(&fetchFormat, "format", "json", "Output format: json or bibtex")
	fetchCmd.Flags().StringVar(&fetchMailto, "mailto", "", "Contact email for the CrossRef polite pool")
	fetchCmd.Flags().BoolVar(&fetchNoCache, "no-cache", false, "Skip the local CrossRef response cache")
	fetchCmd.MarkFlagRequired("input")
	fetchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch citation metadata from CrossRef",
	Long: `Fetch citation metadata from CrossRef and format references.

The input file lists numbered references with optional DOIs:
  [{"id": 1, "doi": "10.1016/...", "fallback": "Author et al., Journal, Year"}]

Entries without a DOI, or whose fetch fails, keep their fallback text.
Fetched responses are cached locally so re-runs stay off the network.

Usage:
  docfield fetch --input refs_input.json --output references.json
  docfield fetch --input refs_input.json --output refs.bib --format bibtex`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

// FetchResponse summarizes a fetch run.
type FetchResponse struct {
	Fetched  int    `json:"fetched"`
	Fallback int    `json:"fallback"`
	Output   string `json:"output"`
}

func runFetch(cmd *cobra.Command, args []string) error {
	// Load a local .env before config.Load reads the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	styleName := fetchStyle
	if styleName == "" {
		styleName = cfg.Style
	}
	if styleName == "" {
		styleName = string(crossref.StyleVancouver)
	}
	style, err := crossref.ParseStyle(styleName)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if fetchFormat != "json" && fetchFormat != "bibtex" {
		exitWithError(ExitError, "unknown output format: %s (expected json or bibtex)", fetchFormat)
	}

	data, err := os.ReadFile(fetchInput)
	if err != nil {
		exitWithError(ExitError, "reading input: %v", err)
	}
	var inputs []reference.InputRef
	if err := json.Unmarshal(data, &inputs); err != nil {
		exitWithError(ExitDataError, "parsing input: %v", err)
	}

	// cfg.Mailto already carries the env overlay, so flag > env > file.
	mailto := fetchMailto
	if mailto == "" {
		mailto = cfg.Mailto
	}
	var clientOpts []crossref.ClientOption
	if mailto != "" {
		clientOpts = append(clientOpts, crossref.WithMailto(mailto))
	}

	fetcher := &crossref.Fetcher{
		Client: crossref.NewClient(clientOpts...),
		Style:  style,
	}
	if !fetchNoCache {
		// A broken cache only costs re-fetches, so it is not fatal.
		if cache, err := crossref.OpenCache(cfg.DefaultCachePath()); err == nil {
			fetcher.Cache = cache
			defer cache.Close()
		}
	}

	resolved, err := fetcher.Resolve(context.Background(), inputs)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if err := writeFetchOutput(resolved); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	fetched := 0
	for _, r := range resolved {
		if r.Record.Source == reference.SourceCrossref {
			fetched++
		}
	}

	if humanOutput {
		outputHuman("Done! %d/%d fetched from CrossRef\n", fetched, len(resolved))
		outputHuman("Output: %s\n", fetchOutput)
		return nil
	}
	return outputJSON(FetchResponse{
		Fetched:  fetched,
		Fallback: len(resolved) - fetched,
		Output:   fetchOutput,
	})
}

// writeFetchOutput writes the resolved references in the requested format.
func writeFetchOutput(resolved []crossref.Resolved) error {
	if fetchFormat == "bibtex" {
		var b strings.Builder
		b.WriteString("% Auto-generated BibTeX file\n")
		fmt.Fprintf(&b, "%% %d references\n\n", len(resolved))
		for i, r := range resolved {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(crossref.ToBibTeX(r.Record.ID, r.Work, r.Record.Formatted))
		}
		return os.WriteFile(fetchOutput, []byte(b.String()), 0644)
	}

	records := make([]reference.Record, len(resolved))
	for i, r := range resolved {
		records[i] = r.Record
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding references: %w", err)
	}
	return os.WriteFile(fetchOutput, append(data, '\n'), 0644)
}
