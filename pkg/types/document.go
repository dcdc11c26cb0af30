// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared record and configuration types for pdf2md.
package types

// ConversionStatus indicates the state of Markdown conversion for a document.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Document holds identity and file paths for a source document moving
// through conversion.
type Document struct {
	// ID is a slug derived from the source filename (e.g. "whitepaper-v2").
	ID string `json:"id" yaml:"id"`

	// SourcePath is the local filesystem path to the source document.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// MarkdownPath is where the converted Markdown was written, once known.
	MarkdownPath string `json:"markdown_path,omitempty" yaml:"markdown_path,omitempty"`

	// ConversionStatus tracks the outcome of the last conversion attempt.
	ConversionStatus ConversionStatus `json:"conversion_status" yaml:"conversion_status"`
}
