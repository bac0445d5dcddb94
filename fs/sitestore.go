package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mferenc/distill"
)

// Ensure SiteStore implements distill.DocumentWriter at compile time.
var _ distill.DocumentWriter = (*SiteStore)(nil)

// SiteStore writes a site's documents with atomic update semantics.
// Documents are written to a temporary directory, then moved into place
// on Commit, so an interrupted crawl never leaves a partial tree.
type SiteStore struct {
	baseDir string
	name    string
}

// NewSiteStore creates a new SiteStore. baseDir is the parent directory,
// name is the output directory name. Documents are written to
// baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSiteStore(baseDir, name string) *SiteStore {
	return &SiteStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *SiteStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SiteStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteDocument writes the document text into the store's temporary
// directory. The document becomes visible only after Commit.
func (s *SiteStore) WriteDocument(ctx context.Context, doc *distill.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(doc.SourceURL, doc.Format)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(doc.Text), 0644)
}

// Commit replaces the final directory with the temporary one.
func (s *SiteStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything written since the store was created.
func (s *SiteStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
