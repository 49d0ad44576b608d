package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for the pack layout: a default file plus per-universe overlays.
type Paths struct {
	BaseDir string // e.g. /opt/engine/content
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "default.yaml")
}
func (p Paths) UniversePath(universe string) string {
	return filepath.Join(p.BaseDir, "universes", universe+".yaml")
}

// Loader reads YAML packs and merges default → universe.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawPack // key: universe name or "$default"
}

// NewLoader creates a pack loader rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawPack),
	}
}

// Load returns the merged pack for a universe. The universe overlay is
// optional; with an empty name only the default file applies. The default
// file must exist — a pack with no base data is an authoring error.
func (l *Loader) Load(universe string) (RawPack, error) {
	key := universe
	if key == "" {
		key = "$default"
	}
	l.mu.RLock()
	if pack, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return pack, nil
	}
	l.mu.RUnlock()

	defPack, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawPack{}, fmt.Errorf("read default pack: %w", err)
	}

	merged := defPack
	if universe != "" {
		uniPack, err := readYAML(l.paths.UniversePath(universe))
		if err != nil {
			return RawPack{}, fmt.Errorf("read universe pack %q: %w", universe, err)
		}
		merged = mergeRaw(defPack, uniPack)
	}

	l.mu.Lock()
	l.cache[key] = merged
	l.mu.Unlock()
	return merged, nil
}

// Invalidate clears the cache. Call after a watcher reports changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawPack)
}

// readYAML loads one pack file. A missing universe overlay is not an error;
// the caller distinguishes via the default-path check above.
func readYAML(path string) (RawPack, error) {
	var pack RawPack
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && filepath.Base(filepath.Dir(path)) == "universes" {
			return RawPack{}, nil
		}
		return RawPack{}, err
	}
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return RawPack{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return pack, nil
}

// mergeRaw overlays b onto a. Scalars in b win when set; list entries merge
// by id, with b's entry replacing a's wholesale on collision. Replacing
// rather than field-merging keeps an overlay readable next to its output.
func mergeRaw(a, b RawPack) RawPack {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	switch {
	case out.Universe == nil && b.Universe != nil:
		c := *b.Universe
		out.Universe = &c
	case out.Universe != nil && b.Universe != nil:
		c := *a.Universe
		if b.Universe.AllowsMultiClass != nil {
			c.AllowsMultiClass = b.Universe.AllowsMultiClass
		}
		if b.Universe.MaxParadigms != nil {
			c.MaxParadigms = b.Universe.MaxParadigms
		}
		out.Universe = &c
	}

	if len(b.Paradigms) > 0 {
		out.Paradigms = mergeByKey(a.Paradigms, b.Paradigms,
			func(p RawParadigm) string { return p.ID })
	}
	if len(b.Relationships) > 0 {
		out.Relationships = mergeByKey(a.Relationships, b.Relationships,
			func(r RawRelationship) string { return pairID(r.A, r.B) })
	}
	if len(b.Hybrids) > 0 {
		out.Hybrids = mergeByKey(a.Hybrids, b.Hybrids,
			func(h RawHybrid) string { return h.ID })
	}

	return out
}

// mergeByKey appends overlay entries, replacing base entries with the same key
// in place so authored ordering survives the merge.
func mergeByKey[T any](base, overlay []T, key func(T) string) []T {
	out := append([]T(nil), base...)
	index := make(map[string]int, len(out))
	for i, item := range out {
		index[key(item)] = i
	}
	for _, item := range overlay {
		if i, ok := index[key(item)]; ok {
			out[i] = item
			continue
		}
		index[key(item)] = len(out)
		out = append(out, item)
	}
	return out
}

func pairID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}
