package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DirWatcher polls the mtimes of every .yaml file under a pack directory and
// triggers a callback on change. Polling keeps the loader dependency-free;
// pack edits are a human-speed event.
type DirWatcher struct {
	BaseDir  string
	Interval time.Duration
	onChange func(path string)

	stopCh    chan struct{}
	lastMTime map[string]time.Time
}

// NewDirWatcher creates a watcher over baseDir with the given poll interval.
func NewDirWatcher(baseDir string, interval time.Duration, onChange func(string)) *DirWatcher {
	return &DirWatcher{
		BaseDir:   baseDir,
		Interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start begins polling in a goroutine. The first scan primes the mtime cache
// without firing callbacks.
func (w *DirWatcher) Start() {
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		w.scan(true)
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *DirWatcher) Stop() {
	close(w.stopCh)
}

// scan walks the pack directory and reports files whose mtime advanced. New
// files count as changes too; deletions are ignored until the file returns.
func (w *DirWatcher) scan(prime bool) {
	_ = filepath.WalkDir(w.BaseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		fi, statErr := os.Stat(path)
		if statErr != nil {
			return nil
		}
		mt := fi.ModTime()
		last, seen := w.lastMTime[path]
		w.lastMTime[path] = mt
		if prime {
			return nil
		}
		if (!seen || mt.After(last)) && w.onChange != nil {
			w.onChange(path)
		}
		return nil
	})
}
