// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract obtains the raw text of a source document. Backends trade
// fidelity for dependencies: the native backend parses the PDF text layer
// in-process, the pdftotext backend defers to poppler, and the text backend
// reads the file verbatim for already-extracted input.
//
// See docs/ARCHITECTURE § Extraction.
package extract

import (
	"fmt"

	"github.com/pdiddy/pdf2md/pkg/types"
)

// Extractor returns the full text content of the document at path as a
// single string.
type Extractor interface {
	Extract(path string) (string, error)
}

// ExtractionError reports a document whose text could not be read, carrying
// the offending source path.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ForBackend returns the extractor implementing the named backend. An empty
// backend selects native extraction.
func ForBackend(backend types.ExtractionBackend) (Extractor, error) {
	switch backend {
	case types.BackendNative, "":
		return &PDFExtractor{}, nil
	case types.BackendPdftotext:
		return NewPdftotextExtractor()
	case types.BackendText:
		return TextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extraction backend %q (want native, pdftotext, or text)", backend)
	}
}
