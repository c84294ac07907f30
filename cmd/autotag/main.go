// Command autotag hosts the enrichment pipeline: a server, a file
// enricher, a coverage reporter, and a store retagger. Everything runs
// offline against local files and a local SQLite store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "autotag",
	Short: "Offline auto-tagging for imported marketing data",
	Long: `autotag enriches imported rows with category, entity and sentiment
tags using keyword tables and lexicons. No external API is involved.

Examples:
  autotag enrich --in transactions.csv --out tagged.jsonl
  autotag serve --addr :8080 --db rows.db
  autotag report --db rows.db --drift
  autotag retag --db rows.db --taxonomy new-taxonomy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
}

func init() {
	rootCmd.PersistentFlags().String("taxonomy", "", "category taxonomy YAML (default: built-in)")
	rootCmd.PersistentFlags().String("content-types", "", "content-type taxonomy YAML (default: built-in)")
	rootCmd.PersistentFlags().String("lexicon", "", "sentiment lexicon YAML (default: built-in)")
	rootCmd.PersistentFlags().String("stoplist", "", "stoplist YAML for drift analysis (default: none)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(retagCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
