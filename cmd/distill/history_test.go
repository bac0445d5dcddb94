package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mferenc/distill"
	main "github.com/mferenc/distill/cmd/distill"
	"github.com/mferenc/distill/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists stored documents", func(t *testing.T) {
		t.Parallel()

		var gotFilter distill.DocumentFilter
		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter distill.DocumentFilter) ([]*distill.Document, error) {
				gotFilter = filter
				return []*distill.Document{
					{
						ID:        "doc-1",
						SourceURL: "https://example.com/docs/install",
						Title:     "Install Guide",
						FetchedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
					},
					{
						ID:        "doc-2",
						SourceURL: "https://example.com/docs/api",
						FetchedAt: time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Documents: documents,
		}

		cmd := &main.HistoryCmd{Limit: 20}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 20, gotFilter.Limit)
		assert.Nil(t, gotFilter.SourceURL)

		out := stdout.String()
		assert.Contains(t, out, "doc-1")
		assert.Contains(t, out, "Install Guide")
		assert.Contains(t, out, "https://example.com/docs/install")
		assert.Contains(t, out, "doc-2")
		assert.Contains(t, out, "(untitled)")
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		var gotFilter distill.DocumentFilter
		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter distill.DocumentFilter) ([]*distill.Document, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Documents: documents,
		}

		cmd := &main.HistoryCmd{URL: "https://example.com/docs/api", Limit: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.SourceURL)
		assert.Equal(t, "https://example.com/docs/api", *gotFilter.SourceURL)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("prints a friendly message when history is empty", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ distill.DocumentFilter) ([]*distill.Document, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Documents: documents,
		}

		cmd := &main.HistoryCmd{Limit: 20}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No documents found")
	})
}
