// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf2md/internal/manifest"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List converted documents recorded in the manifest",
	Long: `List prints the conversion manifest: every document pdf2md has
converted (or failed to convert), with its source, destination, and the time
of the last attempt. Use --export to also write index/export.yaml.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	documentsDir := stringSetting(cmd, "documents-dir", "conversion.documents_dir")

	store, err := manifest.NewStore(documentsDir)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		return err
	}

	if export, _ := cmd.Flags().GetBool("export"); export {
		path, err := store.ExportYAML()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Exported manifest to", path)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No documents recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-24s  %-10s  %-40s  %s\n", "ID", "Status", "Markdown", "Converted")
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-24s  %-10s  %-40s  %s\n",
			e.ID, e.ConversionStatus, e.MarkdownPath, e.ConvertedAt)
	}
	return nil
}

func init() {
	listCmd.Flags().String("documents-dir", "documents", "base directory for the conversion manifest (contains index/)")
	listCmd.Flags().Bool("json", false, "output entries as JSON")
	listCmd.Flags().Bool("export", false, "write the manifest to index/export.yaml")

	rootCmd.AddCommand(listCmd)
}
