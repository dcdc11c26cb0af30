// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/pdf2md/pkg/types"
)

// fakeExtractor implements extract.Extractor for testing. It returns canned
// text or an error, depending on configuration.
type fakeExtractor struct {
	output string
	err    error
}

func (f *fakeExtractor) Extract(path string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

// selectiveExtractor returns different results per source path.
type selectiveExtractor struct {
	outputs map[string]string
	errors  map[string]error
}

func (s *selectiveExtractor) Extract(path string) (string, error) {
	if err, ok := s.errors[path]; ok {
		return "", err
	}
	if out, ok := s.outputs[path]; ok {
		return out, nil
	}
	return "", errors.New("unexpected path: " + path)
}

// setupSource creates a temporary source file and returns its path.
func setupSource(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("raw bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertDocument(t *testing.T) {
	tests := []struct {
		name       string
		extractor  *fakeExtractor
		preCreate  bool // create output MD before running
		wantStatus types.ConversionStatus
		wantLog    string
	}{
		{
			name:       "successful conversion",
			extractor:  &fakeExtractor{output: "1. INTRODUCTION\nBody text here."},
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
		},
		{
			name:       "skip existing markdown",
			extractor:  &fakeExtractor{output: "should not be read"},
			preCreate:  true,
			wantStatus: types.ConversionNone,
			wantLog:    "skipped:",
		},
		{
			name:       "extraction failure",
			extractor:  &fakeExtractor{err: errors.New("no text layer found")},
			wantStatus: types.ConversionFailed,
			wantLog:    "failed:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srcPath := setupSource(t, "report.pdf")

			if tt.preCreate {
				mdPath := MarkdownPath(srcPath)
				if err := os.WriteFile(mdPath, []byte("existing"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			doc := types.Document{ID: "report", SourcePath: srcPath}
			var log bytes.Buffer

			status := ConvertDocument(tt.extractor, FileSink{}, &doc, Options{}, &log)

			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if doc.ConversionStatus != tt.wantStatus {
				t.Errorf("doc status = %q, want %q", doc.ConversionStatus, tt.wantStatus)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log output %q does not contain %q", log.String(), tt.wantLog)
			}
		})
	}
}

func TestConvertDocument_StructuredOutput(t *testing.T) {
	srcPath := setupSource(t, "paper.pdf")
	ext := &fakeExtractor{output: "1. INTRODUCTION\nThis is a sample text"}
	doc := types.Document{ID: "paper", SourcePath: srcPath}

	var log bytes.Buffer
	status := ConvertDocument(ext, FileSink{}, &doc, Options{}, &log)
	if status != types.ConversionDone {
		t.Fatalf("expected ConversionDone, got %q", status)
	}

	data, err := os.ReadFile(doc.MarkdownPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got, want := string(data), "# INTRODUCTION\n\nThis is a sample text"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConvertDocument_Frontmatter(t *testing.T) {
	srcPath := setupSource(t, "paper.pdf")
	ext := &fakeExtractor{output: "Some content."}
	doc := types.Document{ID: "paper", SourcePath: srcPath}

	var log bytes.Buffer
	status := ConvertDocument(ext, FileSink{}, &doc, Options{Frontmatter: true}, &log)
	if status != types.ConversionDone {
		t.Fatalf("expected ConversionDone, got %q", status)
	}

	data, err := os.ReadFile(doc.MarkdownPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "---\n") {
		t.Error("output should start with YAML frontmatter delimiter")
	}
	if !strings.Contains(content, "document_id: paper") {
		t.Error("frontmatter should contain document_id")
	}
	if !strings.Contains(content, "source_path:") {
		t.Error("frontmatter should contain source_path")
	}
	if !strings.Contains(content, "converted_at:") {
		t.Error("frontmatter should contain converted_at")
	}
	if !strings.Contains(content, "Some content.") {
		t.Error("output should contain the converted body")
	}
}

func TestConvertDocument_OutputOverride(t *testing.T) {
	srcPath := setupSource(t, "input.pdf")
	outPath := filepath.Join(t.TempDir(), "nested", "custom.md")

	doc := types.Document{ID: "input", SourcePath: srcPath}
	var log bytes.Buffer
	status := ConvertDocument(&fakeExtractor{output: "Body text."}, FileSink{}, &doc,
		Options{OutputPath: outPath}, &log)

	if status != types.ConversionDone {
		t.Fatalf("expected ConversionDone, got %q", status)
	}
	if doc.MarkdownPath != outPath {
		t.Errorf("MarkdownPath = %q, want %q", doc.MarkdownPath, outPath)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("expected output file at %s", outPath)
	}
}

// failingSink rejects every write.
type failingSink struct{ err error }

func (f failingSink) Write(path, content string) error {
	return &WriteError{Path: path, Err: f.err}
}

func TestConvertDocument_SinkFailure(t *testing.T) {
	srcPath := setupSource(t, "doc.pdf")
	doc := types.Document{ID: "doc", SourcePath: srcPath}

	var log bytes.Buffer
	status := ConvertDocument(&fakeExtractor{output: "text"}, failingSink{err: errors.New("read-only filesystem")},
		&doc, Options{}, &log)

	if status != types.ConversionFailed {
		t.Errorf("status = %q, want %q", status, types.ConversionFailed)
	}
	if !strings.Contains(log.String(), "failed:") {
		t.Errorf("log output %q should report the failure", log.String())
	}
	if !strings.Contains(log.String(), doc.MarkdownPath) {
		t.Errorf("log output %q should name the destination path", log.String())
	}
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()

	// Three sources: one converts, one is pre-existing, one fails extraction.
	paths := make(map[string]string)
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("pdf"), 0o644); err != nil {
			t.Fatal(err)
		}
		paths[name] = p
	}
	if err := os.WriteFile(filepath.Join(dir, "b.md"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	ext := &selectiveExtractor{
		outputs: map[string]string{
			paths["a.pdf"]: "Document A text",
			paths["b.pdf"]: "Document B text",
		},
		errors: map[string]error{
			paths["c.pdf"]: errors.New("bad pdf"),
		},
	}

	docs := []types.Document{
		{ID: "a", SourcePath: paths["a.pdf"]},
		{ID: "b", SourcePath: paths["b.pdf"]},
		{ID: "c", SourcePath: paths["c.pdf"]},
	}

	var log bytes.Buffer
	result := ConvertBatch(ext, FileSink{}, docs, Options{}, &log)

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if result.Total() != 3 {
		t.Errorf("total = %d, want 3", result.Total())
	}

	if docs[0].ConversionStatus != types.ConversionDone {
		t.Errorf("doc a status = %q, want %q", docs[0].ConversionStatus, types.ConversionDone)
	}
	if docs[2].ConversionStatus != types.ConversionFailed {
		t.Errorf("doc c status = %q, want %q", docs[2].ConversionStatus, types.ConversionFailed)
	}

	if !strings.Contains(log.String(), "Batch summary:") {
		t.Error("batch output should contain summary line")
	}
}

func TestConvertPaths(t *testing.T) {
	srcPath := setupSource(t, "sample.pdf")

	var log bytes.Buffer
	result, docs := ConvertPaths(&fakeExtractor{output: "Sample text"}, FileSink{},
		[]string{srcPath}, Options{}, &log)

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if len(docs) != 1 {
		t.Fatalf("docs = %d, want 1", len(docs))
	}
	if docs[0].ID != "sample" {
		t.Errorf("doc ID = %q, want %q", docs[0].ID, "sample")
	}

	mdPath := filepath.Join(filepath.Dir(srcPath), "sample.md")
	if _, err := os.Stat(mdPath); err != nil {
		t.Errorf("expected output file at %s", mdPath)
	}
}

func TestMarkdownPath(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"/docs/report.pdf", "/docs/report.md"},
		{"notes.txt", "notes.md"},
		{"/a/b/archive.tar.gz", "/a/b/archive.tar.md"},
	}
	for _, tt := range tests {
		if got := MarkdownPath(tt.source); got != tt.want {
			t.Errorf("MarkdownPath(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}
