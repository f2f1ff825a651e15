package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/ankitools/photoroster/internal/config"
	"github.com/ankitools/photoroster/internal/importer"
	"github.com/ankitools/photoroster/internal/pdfdoc"
	"github.com/ankitools/photoroster/internal/roster"
	"github.com/ankitools/photoroster/internal/store"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetOutput(os.Stderr)
	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}

func run(cfg *config.Config) error {
	existing, err := store.Load(cfg.ExistingPath)
	if err != nil {
		return err
	}
	log.Printf("Read %d existing people.", len(existing))

	doc, err := pdfdoc.Open(cfg.RosterPath)
	if err != nil {
		return err
	}
	r, err := roster.Open(doc)
	if err != nil {
		doc.Close()
		return err
	}
	defer r.Close()

	if n, err := r.NumStudents(); err == nil {
		log.Printf("Roster %s lists about %d students.", r.CourseTag(), n)
	}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("create import file: %w", err)
	}
	defer out.Close()

	summary, err := importer.Options{
		Roster:   r,
		Existing: existing,
		PhotoDir: cfg.PhotoDir(),
		Output:   out,
	}.Run()
	if err != nil {
		return err
	}

	log.Printf("Imported %d students to %s.", summary.Imported, cfg.OutputPath)
	if len(summary.Backups) > 0 {
		log.Printf("%d replaced photos were kept as numbered backups.", len(summary.Backups))
	}
	if len(summary.Dropped) > 0 {
		log.Printf("The following students were tagged as being in this course "+
			"but are not on this roster (they have probably dropped it): %d", len(summary.Dropped))
		for _, student := range summary.Dropped {
			log.Printf("    %s", student)
		}
	}
	return nil
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Photo Roster Import\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
