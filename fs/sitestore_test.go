package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mferenc/distill"
	"github.com/mferenc/distill/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Site Storage
// A site crawl writes into a temp directory that becomes visible on Commit.

func TestSiteStore_WriteGoesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewSiteStore(base, "output")

	// When I write a document
	err := store.WriteDocument(context.Background(), &distill.Document{
		SourceURL: "https://example.com/docs/api",
		Title:     "API Reference",
		Text:      "Welcome to the API.\n",
		Format:    distill.FormatText,
	})

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory (not final)
	tempPath := filepath.Join(base, "output.tmp", "example.com", "docs", "api.txt")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	// And final directory does not exist yet
	finalPath := filepath.Join(base, "output", "example.com", "docs", "api.txt")
	_, err = os.Stat(finalPath)
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestSiteStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	// Given a store with written documents
	base := t.TempDir()
	store := fs.NewSiteStore(base, "output")
	err := store.WriteDocument(context.Background(), &distill.Document{
		SourceURL: "https://example.com/a",
		Title:     "A",
		Text:      "A\n",
		Format:    distill.FormatText,
	})
	require.NoError(t, err)

	// When I commit
	err = store.Commit()

	// Then no error occurs
	require.NoError(t, err)

	// And final directory exists with content
	finalPath := filepath.Join(base, "output", "example.com", "a.txt")
	_, err = os.Stat(finalPath)
	require.NoError(t, err, "file should exist in final directory after commit")

	// And temp directory is gone
	tempDir := filepath.Join(base, "output.tmp")
	_, err = os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestSiteStore_CommitReplacesPreviousTree(t *testing.T) {
	t.Parallel()

	// Given a committed crawl
	base := t.TempDir()
	first := fs.NewSiteStore(base, "output")
	err := first.WriteDocument(context.Background(), &distill.Document{
		SourceURL: "https://example.com/old",
		Text:      "old\n",
		Format:    distill.FormatText,
	})
	require.NoError(t, err)
	require.NoError(t, first.Commit())

	// When a fresh crawl commits over it
	second := fs.NewSiteStore(base, "output")
	err = second.WriteDocument(context.Background(), &distill.Document{
		SourceURL: "https://example.com/new",
		Text:      "new\n",
		Format:    distill.FormatText,
	})
	require.NoError(t, err)
	require.NoError(t, second.Commit())

	// Then the old tree is gone and the new one is in place
	_, err = os.Stat(filepath.Join(base, "output", "example.com", "old.txt"))
	assert.True(t, os.IsNotExist(err), "previous crawl output should be replaced")
	_, err = os.Stat(filepath.Join(base, "output", "example.com", "new.txt"))
	require.NoError(t, err)
}

func TestSiteStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store with written documents
	base := t.TempDir()
	store := fs.NewSiteStore(base, "output")
	err := store.WriteDocument(context.Background(), &distill.Document{
		SourceURL: "https://example.com/a",
		Title:     "A",
		Text:      "A\n",
		Format:    distill.FormatText,
	})
	require.NoError(t, err)

	// When I abort
	err = store.Abort()

	// Then no error occurs
	require.NoError(t, err)

	// And temp directory is cleaned up
	tempDir := filepath.Join(base, "output.tmp")
	_, err = os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	// And final directory doesn't exist
	finalDir := filepath.Join(base, "output")
	_, err = os.Stat(finalDir)
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestSiteStore_WritesTextVerbatim(t *testing.T) {
	t.Parallel()

	// Given a document with reflowed text
	base := t.TempDir()
	store := fs.NewSiteStore(base, "output")
	text := "Getting started [https://example.com/docs/start] is\neasy.\n"
	err := store.WriteDocument(context.Background(), &distill.Document{
		SourceURL: "https://example.com/intro",
		Title:     "Introduction",
		Text:      text,
		Format:    distill.FormatText,
	})
	require.NoError(t, err)
	require.NoError(t, store.Commit())

	// When I read the file back
	content, err := os.ReadFile(filepath.Join(base, "output", "example.com", "intro.txt"))
	require.NoError(t, err)

	// Then it is exactly the document text, nothing added
	assert.Equal(t, text, string(content))
}

func TestSiteStore_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	// Given a store
	base := t.TempDir()
	store := fs.NewSiteStore(base, "output")

	// When I write a document whose URL climbs out of the tree
	err := store.WriteDocument(context.Background(), &distill.Document{
		SourceURL: "https://example.com/../../../etc/passwd",
		Title:     "Malicious",
		Text:      "bad content\n",
		Format:    distill.FormatText,
	})

	// Then an error is returned
	require.Error(t, err, "path traversal should be rejected")
	assert.Contains(t, err.Error(), "path traversal")
}
