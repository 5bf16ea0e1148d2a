package main

import (
	"encoding/json"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/docfield/docfield/internal/docpkg"
	"github.com/docfield/docfield/internal/field"
	"github.com/docfield/docfield/internal/inject"
	"github.com/docfield/docfield/internal/reference"
)

var (
	injectUnpacked string
	injectRefs     string
)

func init() {
	injectCmd.Flags().StringVar(&injectUnpacked, "unpacked", "", "Path to unpacked docx directory")
	injectCmd.Flags().StringVar(&injectRefs, "refs", "", "Path to references.json")
	injectCmd.MarkFlagRequired("unpacked")
	injectCmd.MarkFlagRequired("refs")
	rootCmd.AddCommand(injectCmd)
}

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Inject Zotero field codes into an unpacked document",
	Long: `Inject Zotero field codes into an unpacked document.

Plain [N] and [N,N,N] citations in word/document.xml become ADDIN
ZOTERO_ITEM complex fields, and the numbered bibliography region is
wrapped in an ADDIN ZOTERO_BIBL field. The document file is rewritten
in place only after every transformation succeeds.

Usage:
  docfield inject --unpacked unpacked/ --refs references.json`,
	Args: cobra.NoArgs,
	RunE: runInject,
}

// InjectResponse reports what one injection run changed.
type InjectResponse struct {
	Citations           int    `json:"citations"`
	BibliographyEntries int    `json:"bibliography_entries"`
	References          int    `json:"references"` // distinct records in the refs file
	Document            string `json:"document"`
}

func runInject(cmd *cobra.Command, args []string) error {
	refData, err := os.ReadFile(injectRefs)
	if err != nil {
		exitWithError(ExitError, "reading references: %v", err)
	}

	var records []reference.Record
	if err := json.Unmarshal(refData, &records); err != nil {
		exitWithError(ExitDataError, "parsing references: %v", err)
	}
	// Index by ID so duplicate entries collapse in the reported count.
	refs := reference.Lookup(records)

	docPath := filepath.Join(injectUnpacked, filepath.FromSlash(docpkg.DocumentPath))
	builder := field.NewBuilder(field.RandomIDs(rand.New(rand.NewSource(time.Now().UnixNano()))))

	res, err := inject.New(builder).InjectFile(docPath)
	if err != nil {
		if errors.Is(err, inject.ErrNoBody) {
			exitWithError(ExitStructure, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		outputHuman("Injected %d inline citation field codes\n", res.Citations)
		outputHuman("Wrapped %d bibliography entries in ZOTERO_BIBL field\n", res.BibliographyEntries)
		return nil
	}
	return outputJSON(InjectResponse{
		Citations:           res.Citations,
		BibliographyEntries: res.BibliographyEntries,
		References:          len(refs),
		Document:            docPath,
	})
}
