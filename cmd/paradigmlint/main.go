// paradigmlint validates an authored magic content pack: YAML schema and
// enum checks, cross-reference resolution, paradigm completeness, and hybrid
// recipe sanity. Exit code 1 means the pack is not safe to ship.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/annhoward/arcana/internal/content"
	"github.com/annhoward/arcana/internal/paradigm"
)

func main() {
	configDir := flag.String("config", "data", "content pack directory")
	universe := flag.String("universe", "", "universe overlay to apply (empty = default only)")
	watch := flag.Bool("watch", false, "re-lint whenever a pack file changes")
	interval := flag.Duration("interval", 2*time.Second, "watch poll interval")
	flag.Parse()

	loader := content.NewLoader(*configDir)

	if !*watch {
		if !lint(loader, *universe) {
			os.Exit(1)
		}
		return
	}

	lint(loader, *universe)
	watcher := content.NewDirWatcher(*configDir, *interval, func(path string) {
		log.Printf("changed: %s", path)
		loader.Invalidate()
		lint(loader, *universe)
	})
	watcher.Start()
	defer watcher.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}

// lint loads, builds, and reports on one universe's merged pack.
func lint(loader *content.Loader, universe string) bool {
	pack, err := loader.Load(universe)
	if err != nil {
		log.Printf("FAIL load: %v", err)
		return false
	}

	rs, err := content.Build(pack)
	if err != nil {
		log.Printf("FAIL %v", err)
		return false
	}

	ok := true
	ids := make([]string, 0, len(rs.Paradigms))
	for id := range rs.Paradigms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := paradigm.Validate(rs.Paradigms[id]); err != nil {
			log.Printf("FAIL %v", err)
			ok = false
		}
	}

	// Hybrids whose own recipe is an unstable combination are legal but worth
	// surfacing to authors.
	hybridIDs := make([]string, 0, len(rs.Hybrids))
	for id := range rs.Hybrids {
		hybridIDs = append(hybridIDs, id)
	}
	sort.Strings(hybridIDs)
	for _, id := range hybridIDs {
		h := rs.Hybrids[id]
		report := rs.Relations.Stability(h.SourceParadigms)
		for _, c := range report.Conflicts {
			log.Printf("WARN hybrid %s: sources %s and %s are %s",
				h.ID, c.ParadigmA, c.ParadigmB, c.Relationship)
		}
	}

	if ok {
		log.Printf("OK %d paradigms, %d relations, %d hybrids (version %s)",
			len(rs.Paradigms), rs.Relations.Len(), len(rs.Hybrids), rs.Version)
	}
	return ok
}
