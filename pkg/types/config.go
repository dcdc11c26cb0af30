// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the text extraction tool.
type ExtractionBackend string

const (
	// BackendNative parses the PDF text layer in-process.
	BackendNative ExtractionBackend = "native"
	// BackendPdftotext shells out to the poppler pdftotext binary.
	BackendPdftotext ExtractionBackend = "pdftotext"
	// BackendText reads the input file verbatim as plain text.
	BackendText ExtractionBackend = "text"
)

// ConversionConfig holds settings for the convert command.
type ConversionConfig struct {
	// Backend selects the extraction tool: native, pdftotext, or text.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// DocumentsDir is the base directory for conversion bookkeeping
	// (contains index/). Converted Markdown itself lands next to its input
	// unless an explicit output path is given.
	DocumentsDir string `json:"documents_dir" yaml:"documents_dir"`

	// Frontmatter prepends a YAML provenance header to converted files.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`
}
