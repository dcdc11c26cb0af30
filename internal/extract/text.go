// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "os"

// TextExtractor reads the file verbatim. It exists so already-extracted
// plain text can drive conversion directly, and it keeps the pipeline
// testable without PDF fixtures.
type TextExtractor struct{}

func (TextExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	return string(data), nil
}
