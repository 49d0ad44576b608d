package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDirWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "default.yaml")
	require.NoError(t, os.WriteFile(target, []byte("version: \"1\"\n"), 0o644))

	changed := make(chan string, 8)
	w := NewDirWatcher(dir, 20*time.Millisecond, func(path string) {
		changed <- path
	})
	w.Start()
	defer w.Stop()

	// let the prime scan run; it must not fire
	time.Sleep(100 * time.Millisecond)
	select {
	case path := <-changed:
		t.Fatalf("prime scan fired for %s", path)
	default:
	}

	// mtime granularity on some filesystems is one second
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.WriteFile(target, []byte("version: \"2\"\n"), 0o644))
	require.NoError(t, os.Chtimes(target, future, future))

	select {
	case path := <-changed:
		require.Equal(t, target, path)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher never reported the edit")
	}
}

func TestDirWatcherIgnoresNonYAML(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))

	changed := make(chan string, 8)
	w := NewDirWatcher(dir, 20*time.Millisecond, func(path string) {
		changed <- path
	})
	w.Start()
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.WriteFile(other, []byte("y"), 0o644))
	require.NoError(t, os.Chtimes(other, future, future))

	select {
	case path := <-changed:
		t.Fatalf("watcher fired for non-yaml file %s", path)
	case <-time.After(300 * time.Millisecond):
	}
}
