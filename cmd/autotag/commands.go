package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	appconfig "github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/internal/config"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/internal/rowio"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/analytics"
	tablecfg "github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/config"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/drift"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/maintenance"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store/memstore"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store/sqlite"
)

// tableComponents builds the classifier stack from environment config
// overlaid with the persistent flags.
func tableComponents(cmd *cobra.Command) (*tablecfg.Components, error) {
	loader := appconfig.Load().TableLoader()
	overlay := func(dst *string, flag string) {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			*dst = v
		}
	}
	overlay(&loader.TaxonomyPath, "taxonomy")
	overlay(&loader.ContentTypesPath, "content-types")
	overlay(&loader.LexiconPath, "lexicon")
	overlay(&loader.StoplistPath, "stoplist")
	return loader.Load()
}

// openStore opens SQLite at path, or an in-memory store for "".
func openStore(ctx context.Context, path string) (store.Store, error) {
	if path == "" {
		return memstore.New(), nil
	}
	return sqlite.Open(ctx, path)
}

// --- enrich ---

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich rows from a CSV or JSONL file",
	Long: `Enrich rows from a CSV or JSONL file.

The input format follows the extension (.csv or anything else for
JSONL); the output format follows the output extension, with JSONL on
stdout when --out is omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		dbPath, _ := cmd.Flags().GetString("db")
		textField, _ := cmd.Flags().GetString("text-field")
		workers, _ := cmd.Flags().GetInt("workers")

		if in == "" {
			return fmt.Errorf("--in is required")
		}

		recs, err := readRecords(in)
		if err != nil {
			return err
		}

		comp, err := tableComponents(cmd)
		if err != nil {
			return err
		}

		var st store.Store
		if dbPath != "" {
			st, err = sqlite.Open(cmd.Context(), dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()
		}

		enricher := rowio.NewEnricher(rowio.Options{
			Pipeline:  comp.Pipeline(),
			Store:     st,
			TextField: textField,
			Workers:   workers,
		})
		sum, err := enricher.Enrich(cmd.Context(), recs, uuid.New().String())
		if err != nil {
			return err
		}

		if err := writeRecords(out, recs); err != nil {
			return err
		}
		slog.Info("enrich complete", "rows", sum.Rows, "categories", len(sum.Categories))
		return nil
	},
}

func readRecords(path string) ([]autotag.Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return rowio.ReadCSV(f)
	}
	return rowio.ReadJSONL(path)
}

func writeRecords(path string, recs []autotag.Record) error {
	if path == "" {
		enc := json.NewEncoder(os.Stdout)
		for _, rec := range recs {
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}
		return nil
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return rowio.WriteCSV(f, recs, csvColumns(recs))
	}
	return rowio.WriteJSONL(path, recs)
}

// csvColumns derives a stable column order: input fields as they sort,
// then the enrichment fields.
func csvColumns(recs []autotag.Record) []string {
	derived := map[string]bool{
		autotag.FieldCategory:  true,
		autotag.FieldEntities:  true,
		autotag.FieldSentiment: true,
		autotag.FieldCustomer:  true,
	}
	seen := map[string]bool{}
	var cols []string
	for _, rec := range recs {
		for name := range rec {
			if !derived[name] && !seen[name] {
				seen[name] = true
				cols = append(cols, name)
			}
		}
	}
	sort.Strings(cols)
	return append(cols,
		autotag.FieldCategory, autotag.FieldEntities,
		autotag.FieldSentiment, autotag.FieldCustomer)
}

func init() {
	enrichCmd.Flags().String("in", "", "input file, CSV or JSONL (required)")
	enrichCmd.Flags().String("out", "", "output file, CSV or JSONL (default: JSONL on stdout)")
	enrichCmd.Flags().String("db", "", "SQLite file to persist enriched rows")
	enrichCmd.Flags().String("text-field", "", "record field to read (default: description)")
	enrichCmd.Flags().Int("workers", 0, "concurrent enrichment workers (default: 4)")
}

// --- report ---

type coverageReport struct {
	Rows        int64                       `json:"rows"`
	Categories  map[string]int64            `json:"categories"`
	Sentiments  map[string]int64            `json:"sentiments"`
	KeywordRows map[string]map[string]int64 `json:"keyword_rows"`
	Drift       []drift.Suggestion          `json:"drift,omitempty"`
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print category, sentiment and keyword coverage for stored rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		withDrift, _ := cmd.Flags().GetBool("drift")
		textField, _ := cmd.Flags().GetString("text-field")
		if dbPath == "" {
			return fmt.Errorf("--db is required")
		}
		if textField == "" {
			textField = autotag.DefaultTextField
		}

		comp, err := tableComponents(cmd)
		if err != nil {
			return err
		}
		st, err := sqlite.Open(cmd.Context(), dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rows, err := st.ListRows(cmd.Context(), store.Filter{})
		if err != nil {
			return fmt.Errorf("list rows: %w", err)
		}

		analyzer := analytics.NewAnalyzer(comp.Stopwords)
		for _, row := range rows {
			text := fieldString(row.Fields, textField)
			cat, label := store.Labels(row.Fields)
			analyzer.Observe(cat, label, comp.Categories.Explain(text), sentiment.Tokens(text))
		}
		stats := analyzer.Snapshot()

		rep := coverageReport{
			Rows:        stats.TotalRows,
			Categories:  stats.Categories,
			Sentiments:  stats.Sentiments,
			KeywordRows: stats.KeywordRows,
		}
		if withDrift {
			det := &drift.Detector{
				Classifier: comp.Categories,
				Provider:   analytics.NewDriftProvider(stats),
				Stopwords:  comp.Stopwords,
			}
			rep.Drift, err = det.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("drift detection: %w", err)
			}
		}

		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func fieldString(fields map[string]any, name string) string {
	s, _ := fields[name].(string)
	return s
}

func init() {
	reportCmd.Flags().String("db", "", "SQLite file to report on (required)")
	reportCmd.Flags().Bool("drift", false, "append taxonomy drift suggestions")
	reportCmd.Flags().String("text-field", "", "record field to read (default: description)")
}

// --- retag ---

var retagCmd = &cobra.Command{
	Use:   "retag",
	Short: "Re-run the pipeline over stored rows after table changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		textField, _ := cmd.Flags().GetString("text-field")
		if dbPath == "" {
			return fmt.Errorf("--db is required")
		}

		comp, err := tableComponents(cmd)
		if err != nil {
			return err
		}
		st, err := sqlite.Open(cmd.Context(), dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rows, err := st.ListRows(cmd.Context(), store.Filter{})
		if err != nil {
			return fmt.Errorf("list rows: %w", err)
		}

		retagger := &maintenance.Retagger{
			Pipeline:  comp.Pipeline(),
			TextField: textField,
		}
		stats, err := retagger.Run(cmd.Context(), &sliceSource{rows: rows}, func(row store.Row) error {
			return st.ReplaceRow(cmd.Context(), row)
		})
		if err != nil {
			return err
		}

		slog.Info("retag complete",
			"scanned", stats.Scanned, "changed", stats.Changed, "errors", stats.Errors)
		return nil
	},
}

type sliceSource struct {
	rows []store.Row
	pos  int
}

func (s *sliceSource) Next(ctx context.Context) (store.Row, bool, error) {
	if s.pos >= len(s.rows) {
		return store.Row{}, false, nil
	}
	row := s.rows[s.pos]
	s.pos++
	return row, true, nil
}

func init() {
	retagCmd.Flags().String("db", "", "SQLite file to retag (required)")
	retagCmd.Flags().String("text-field", "", "record field to read (default: description)")
}
