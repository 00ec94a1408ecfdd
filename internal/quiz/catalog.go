package quiz

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// documentNames are the file names probed inside a quiz directory, in
// priority order.
var documentNames = []string{"quiz.json", "quiz.yaml", "quiz.yml"}

// Catalog is a directory of quizzes laid out as <dir>/<slug>/quiz.json
// (or quiz.yaml).
type Catalog struct {
	Dir string
}

// Entry describes one quiz in a catalog.
type Entry struct {
	Slug string
	Path string
}

// NewCatalog returns a catalog rooted at dir.
func NewCatalog(dir string) *Catalog {
	return &Catalog{Dir: dir}
}

// List returns every quiz directory that contains a quiz document, sorted
// by slug.
func (c *Catalog) List() ([]Entry, error) {
	dirents, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", c.Dir, err)
	}

	var entries []Entry
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}
		if path, ok := c.documentPath(d.Name()); ok {
			entries = append(entries, Entry{Slug: d.Name(), Path: path})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Slug < entries[j].Slug })
	return entries, nil
}

// Path returns the document path for slug, or ErrNotFound.
func (c *Catalog) Path(slug string) (string, error) {
	if slug == "" || slug != filepath.Base(slug) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	path, ok := c.documentPath(slug)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return path, nil
}

// Load reads and validates the quiz stored under slug.
func (c *Catalog) Load(slug string) (*Quiz, error) {
	path, err := c.Path(slug)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

func (c *Catalog) documentPath(slug string) (string, bool) {
	for _, name := range documentNames {
		p := filepath.Join(c.Dir, slug, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}
