// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf2md/pkg/types"
)

// now is replaced in tests for stable timestamps.
var now = time.Now

// frontmatter is the provenance header prepended to converted documents.
type frontmatter struct {
	DocumentID  string `yaml:"document_id"`
	SourcePath  string `yaml:"source_path"`
	ConvertedAt string `yaml:"converted_at"`
}

// addFrontmatter prepends a YAML frontmatter block to the converted body.
func addFrontmatter(doc types.Document, body string) (string, error) {
	data, err := yaml.Marshal(frontmatter{
		DocumentID:  doc.ID,
		SourcePath:  doc.SourcePath,
		ConvertedAt: now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}
