// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(name string, args []string, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) RunPiped(name string, args []string, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	return cmd.Run()
}

var defaultExec = osExecutor{}

// PdftotextExtractor shells out to the poppler pdftotext binary. It handles
// PDFs the native parser chokes on, at the cost of an external tool.
type PdftotextExtractor struct {
	exec executor
}

// NewPdftotextExtractor verifies that pdftotext is on PATH before returning
// an extractor bound to it.
func NewPdftotextExtractor() (*PdftotextExtractor, error) {
	return newPdftotextExtractor(defaultExec)
}

func newPdftotextExtractor(ex executor) (*PdftotextExtractor, error) {
	if _, err := ex.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", binPdftotext, err)
	}
	return &PdftotextExtractor{exec: ex}, nil
}

// Extract runs pdftotext with -layout so physical line breaks survive into
// the output, which the structure heuristics depend on.
func (x *PdftotextExtractor) Extract(path string) (string, error) {
	var out bytes.Buffer
	if err := x.exec.RunPiped(binPdftotext, []string{"-layout", path, "-"}, &out); err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	return out.String(), nil
}
