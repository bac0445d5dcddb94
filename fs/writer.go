// Package fs provides file-based storage for distilled documents.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mferenc/distill"
)

// URLToPath converts a page URL to a relative file path. The host keeps
// the path unique across sites; "www." adds nothing and is dropped.
// Example: https://www.example.com/docs/api.html → example.com/docs/api.txt
func URLToPath(rawURL, format string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", distill.Errorf(distill.EINVALID, "URL must be absolute: %q", rawURL)
	}

	host := strings.TrimPrefix(u.Host, "www.")

	path := strings.TrimSuffix(u.Path, "/")
	path = strings.TrimSuffix(path, ".html")
	path = strings.TrimSuffix(path, ".shtml")

	ext := ".txt"
	if format == distill.FormatMarkdown {
		ext = ".md"
	}

	rel := host + path + ext
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", distill.Errorf(distill.EINVALID, "path traversal in URL %q", rawURL)
	}

	return rel, nil
}

// Ensure Writer implements distill.DocumentWriter at compile time.
var _ distill.DocumentWriter = (*Writer)(nil)

// Writer writes distilled documents as plain files under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes the document text to a path derived from its source
// URL. Parent directories are created as needed.
func (w *Writer) WriteDocument(ctx context.Context, doc *distill.Document) error {
	_, err := w.Write(ctx, doc)
	return err
}

// Write is WriteDocument plus the path of the file written, so callers
// reporting the destination show the path that was actually used.
func (w *Writer) Write(_ context.Context, doc *distill.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	relPath, err := URLToPath(doc.SourceURL, doc.Format)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(doc.Text), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
