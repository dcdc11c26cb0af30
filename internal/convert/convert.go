// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives the document-to-Markdown pipeline: extract the raw
// text, infer structure with the markdown engine, and hand the result to a
// Sink. Batch runs report per-file status to an io.Writer and summarize at
// the end.
//
// See docs/ARCHITECTURE § Conversion.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdf2md/internal/extract"
	"github.com/pdiddy/pdf2md/internal/markdown"
	"github.com/pdiddy/pdf2md/pkg/types"
)

// Options control a conversion run.
type Options struct {
	// OutputPath overrides the derived destination. Only meaningful for a
	// single document; batch runs derive every destination.
	OutputPath string

	// Frontmatter prepends a YAML header carrying document provenance.
	Frontmatter bool
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any documents failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// MarkdownPath derives the destination for a source document: the input
// basename with a .md extension, next to the input.
func MarkdownPath(sourcePath string) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return filepath.Join(filepath.Dir(sourcePath), base+".md")
}

// ConvertDocument converts a single document to Markdown and writes it via
// the sink. It fills in doc.MarkdownPath and doc.ConversionStatus and
// returns the status. If the destination already exists, the document is
// skipped and its status stays ConversionNone.
func ConvertDocument(ex extract.Extractor, sink Sink, doc *types.Document, opts Options, w io.Writer) types.ConversionStatus {
	mdPath := opts.OutputPath
	if mdPath == "" {
		mdPath = MarkdownPath(doc.SourcePath)
	}
	doc.MarkdownPath = mdPath

	if _, err := os.Stat(mdPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", doc.ID)
		doc.ConversionStatus = types.ConversionNone
		return doc.ConversionStatus
	}

	text, err := ex.Extract(doc.SourcePath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		doc.ConversionStatus = types.ConversionFailed
		return doc.ConversionStatus
	}

	content := markdown.Convert(text)
	if opts.Frontmatter {
		content, err = addFrontmatter(*doc, content)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
			doc.ConversionStatus = types.ConversionFailed
			return doc.ConversionStatus
		}
	}

	if err := sink.Write(mdPath, content); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.ID, err)
		doc.ConversionStatus = types.ConversionFailed
		return doc.ConversionStatus
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", doc.ID, mdPath)
	doc.ConversionStatus = types.ConversionDone
	return doc.ConversionStatus
}

// ConvertBatch processes documents in order, printing per-file status to w
// and a summary line at the end. The documents are updated in place with
// their output paths and statuses.
func ConvertBatch(ex extract.Extractor, sink Sink, docs []types.Document, opts Options, w io.Writer) BatchResult {
	var result BatchResult
	for i := range docs {
		switch ConvertDocument(ex, sink, &docs[i], opts, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// ConvertPaths builds Document records from raw input paths, with IDs
// derived from the filenames, and delegates to ConvertBatch. It returns the
// summary and the updated records.
func ConvertPaths(ex extract.Extractor, sink Sink, paths []string, opts Options, w io.Writer) (BatchResult, []types.Document) {
	docs := make([]types.Document, len(paths))
	for i, p := range paths {
		base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		docs[i] = types.Document{
			ID:         base,
			SourcePath: p,
		}
	}
	result := ConvertBatch(ex, sink, docs, opts, w)
	return result, docs
}
