// merge-imports reads sorted import lines from stdin, folds duplicate
// students, appends the tags already known for each student from an
// existing export file, and writes the merged lines to stdout.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ankitools/photoroster/internal/importer"
	"github.com/ankitools/photoroster/internal/store"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s existing\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "    existing: tab-separated export file listing the records already imported\n\n")
	fmt.Fprintf(os.Stderr, "Import lines are read from stdin (sorted by student ID) and the merged\n")
	fmt.Fprintf(os.Stderr, "output is written to stdout.\n")
}

func main() {
	log.SetOutput(os.Stderr)

	if len(os.Args) != 2 {
		usage()
		os.Exit(1)
	}

	existing, err := store.LoadExport(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load existing records: %v", err)
	}

	if err := importer.MergeImports(existing, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Merge failed: %v", err)
	}
}
