package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/mferenc/distill"
	"github.com/mferenc/distill/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	t.Run("gathers flat text, paragraphs, and anchors from the body", func(t *testing.T) {
		t.Parallel()

		doc, err := gq.NewDocumentFromReader(strings.NewReader(
			`<html><body><p>First para.</p><div>loose <a href="/l">link</a></div></body></html>`))
		require.NoError(t, err)

		flat, paragraphs, anchors := goquery.Collect(doc)

		assert.Equal(t, "First para.loose link", flat)
		assert.Equal(t, []string{"First para."}, paragraphs)
		assert.Equal(t, []distill.Anchor{{Text: "link", Href: "/l"}}, anchors)
	})

	t.Run("drops empty paragraphs but keeps empty-text anchors", func(t *testing.T) {
		t.Parallel()

		doc, err := gq.NewDocumentFromReader(strings.NewReader(
			`<html><body><p>  </p><a href="/x"></a></body></html>`))
		require.NoError(t, err)

		_, paragraphs, anchors := goquery.Collect(doc)

		assert.Empty(t, paragraphs)
		require.Len(t, anchors, 1)
		assert.Empty(t, anchors[0].Text)
		assert.Equal(t, "/x", anchors[0].Href)
	})
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	t.Run("reflows content with link annotations", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.RenderText(
			`<p>Hello <a href="/x">there</a>.</p>`,
			"https://example.com",
			80,
		)

		require.NoError(t, err)
		assert.Equal(t, "Hello there [https://example.com/x].\n", got)
	})

	t.Run("propagates invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.RenderText("<p>hi</p>", "", 80)

		require.Error(t, err)
		assert.Equal(t, distill.EINVALID, distill.ErrorCode(err))
	})
}
