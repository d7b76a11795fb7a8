//go:build ignore

// Regenerates table.go, table_names.go and table_autonyms.go from the
// registry snapshots at the module root. Run it via go generate.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/humenda/isolang/internal/isotable"
)

var (
	isoTable     = flag.String("iso639", "iso-639-3.tab", "path to the SIL ISO 639-3 code table")
	autonymTable = flag.String("autonyms", "iso639-autonyms.tsv", "path to the autonym table")
	outDir       = flag.String("dir", ".", "directory the generated files are written to")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gen: ")
	flag.Parse()

	entries, warnings, err := isotable.Load(*isoTable, *autonymTable)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range warnings {
		log.Print("warning: ", w)
	}

	for name, src := range isotable.RenderFiles(entries) {
		if err := os.WriteFile(filepath.Join(*outDir, name), src, 0o644); err != nil {
			log.Fatalf("write %s: %v", name, err)
		}
	}
	log.Printf("wrote %d entries", len(entries))
}
