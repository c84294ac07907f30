// Command content-tag classifies local HTML or text files by content
// type and sentiment, printing one JSON line per file. With --db it
// also stores each file as a content row.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/internal/content"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/config"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/sentiment"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/store/sqlite"
)

type fileTag struct {
	Path        string           `json:"path"`
	Title       string           `json:"title"`
	ContentType string           `json:"content_type"`
	Sentiment   sentiment.Result `json:"sentiment"`
	RowID       string           `json:"row_id,omitempty"`
}

func main() {
	var (
		typesPath = flag.String("content-types", "", "Content-type taxonomy YAML (default: built-in)")
		lexPath   = flag.String("lexicon", "", "Sentiment lexicon YAML (default: built-in)")
		dbPath    = flag.String("db", "", "Optional SQLite file to store content rows")
	)
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("usage: content-tag [flags] file.html [file2 ...]")
	}

	loader := config.Loader{ContentTypesPath: *typesPath, LexiconPath: *lexPath}
	comp, err := loader.Load()
	if err != nil {
		log.Fatalf("load tables: %v", err)
	}

	ctx := context.Background()
	var st store.Store
	if *dbPath != "" {
		st, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer st.Close()
	}
	tagger := content.NewTagger(comp.ContentTypes, comp.Sentiment, st)

	enc := json.NewEncoder(os.Stdout)
	exit := 0
	for _, path := range files {
		item, err := content.LoadItem(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
			continue
		}

		var rec autotag.Record
		var rowID string
		if st != nil {
			row, err := tagger.Ingest(ctx, item)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				exit = 1
				continue
			}
			rec, rowID = row.Fields, row.ID
		} else {
			rec = tagger.Tag(item)
		}

		tag := fileTag{
			Path:  item.Path,
			Title: item.Title,
			RowID: rowID,
		}
		tag.ContentType, _ = rec[autotag.FieldContentType].(string)
		tag.Sentiment, _ = rec[autotag.FieldSentiment].(sentiment.Result)
		enc.Encode(tag)
	}
	os.Exit(exit)
}
