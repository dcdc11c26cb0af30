// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf2md/internal/convert"
	"github.com/pdiddy/pdf2md/internal/extract"
	"github.com/pdiddy/pdf2md/internal/manifest"
	"github.com/pdiddy/pdf2md/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [inputs...]",
	Short: "Convert PDF or text files to structured Markdown",
	Long: `Convert extracts the text of each input document and rewrites it as
structured Markdown: numbered sections become headings, shouted words become
bold, and wrapped lines are joined into paragraphs.

Output lands next to each input with a .md extension unless --output names a
destination for a single input. Existing outputs are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := conversionConfig(cmd)

	ex, err := extract.ForBackend(cfg.Backend)
	if err != nil {
		return err
	}

	opts := convert.Options{Frontmatter: cfg.Frontmatter}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		if len(args) > 1 {
			return fmt.Errorf("--output requires exactly one input, got %d", len(args))
		}
		opts.OutputPath = out
	}

	result, docs := convert.ConvertPaths(ex, convert.FileSink{}, args, opts, os.Stdout)

	recordResults(cfg.DocumentsDir, docs)

	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}

// recordResults writes conversion outcomes to the manifest. Bookkeeping is
// best-effort: a manifest failure warns but does not undo a completed
// conversion.
func recordResults(documentsDir string, docs []types.Document) {
	store, err := manifest.NewStore(documentsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: manifest unavailable: %v\n", err)
		return
	}
	defer store.Close()

	for _, doc := range docs {
		if doc.ConversionStatus == types.ConversionNone {
			continue
		}
		if err := store.Record(doc); err != nil {
			fmt.Fprintf(os.Stderr, "warning: manifest record failed for %s: %v\n", doc.ID, err)
		}
	}
}

func conversionConfig(cmd *cobra.Command) types.ConversionConfig {
	return types.ConversionConfig{
		Backend:      types.ExtractionBackend(stringSetting(cmd, "backend", "conversion.backend")),
		DocumentsDir: stringSetting(cmd, "documents-dir", "conversion.documents_dir"),
		Frontmatter:  boolSetting(cmd, "frontmatter", "conversion.frontmatter"),
	}
}

// stringSetting resolves a setting from its flag, falling back to the
// config file when the flag was left at its default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output path (single input only; default: input with .md extension)")
	convertCmd.Flags().String("backend", "native", "extraction backend: native, pdftotext, or text")
	convertCmd.Flags().String("documents-dir", "documents", "base directory for the conversion manifest (contains index/)")
	convertCmd.Flags().Bool("frontmatter", false, "prepend a YAML provenance header to converted files")

	rootCmd.AddCommand(convertCmd)
}
