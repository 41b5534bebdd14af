package mustache

import (
	"io/fs"
	"os"
	"sync"
)

// FileLoader supplies the content of template files referenced by
// partial tags and by ParseFile. Implementations must be safe for
// concurrent use.
type FileLoader interface {
	// Load returns the raw content of the file at path.
	Load(path string) ([]byte, error)
}

// OSLoader reads template files from the local filesystem.
type OSLoader struct{}

// NewOSLoader creates a filesystem-backed loader.
func NewOSLoader() *OSLoader {
	return &OSLoader{}
}

// Load reads the file at path from disk.
func (l *OSLoader) Load(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MapLoader serves template content from an in-memory map keyed by
// path. It is primarily intended for testing and embedded template
// sets.
type MapLoader struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMapLoader creates a loader over the given path to content map.
// The map may be nil; entries can be added later with Set.
func NewMapLoader(files map[string]string) *MapLoader {
	l := &MapLoader{files: make(map[string][]byte, len(files))}
	for path, content := range files {
		l.files[path] = []byte(content)
	}
	return l
}

// Set stores content under path, replacing any previous entry.
func (l *MapLoader) Set(path, content string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files[path] = []byte(content)
}

// Delete removes the entry under path, if any.
func (l *MapLoader) Delete(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.files, path)
}

// Load returns a copy of the content stored under path. A missing
// path reports fs.ErrNotExist, matching the filesystem loader.
func (l *MapLoader) Load(path string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	content, ok := l.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

var (
	_ FileLoader = (*OSLoader)(nil)
	_ FileLoader = (*MapLoader)(nil)
)
