package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pds-go/skeleton/internal/domain"
)

// DirScanner implements domain.ListingProvider by reading the root directory.
// Only direct children are listed.
type DirScanner struct{}

func New() *DirScanner {
	return &DirScanner{}
}

// List returns the entries of root sorted by name. Directories, including
// symlinks that resolve to directories, get a trailing "/". Entries matching
// any ignore pattern are dropped.
func (s *DirScanner) List(root string, ignore ...string) (domain.Listing, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", absPath, err)
	}

	listing := make(domain.Listing, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if isDir(absPath, e) {
			name += "/"
		}
		if ignored(name, ignore) {
			continue
		}
		listing = append(listing, name)
	}

	return listing, nil
}

func isDir(root string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, e.Name()))
	return err == nil && info.IsDir()
}

// ignored matches the entry as listed ("vendor/") and without its marker
// ("vendor"), so patterns need not care whether an entry is a directory.
func ignored(name string, patterns []string) bool {
	bare := name
	if domain.IsDirEntry(name) {
		bare = name[:len(name)-1]
	}
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, bare); ok {
			return true
		}
	}
	return false
}
