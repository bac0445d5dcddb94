package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/mferenc/distill"
	"github.com/mferenc/distill/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T) *trafilatura.Extractor {
	t.Helper()

	ext, err := trafilatura.NewExtractor(distill.DefaultOptions())
	require.NoError(t, err)
	return ext
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Docs</title>
<meta property="og:title" content="Getting Started Guide">
</head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the documentation page.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		result, err := newExtractor(t).Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Contains(t, result.ContentHTML, "main content of the documentation")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
<li><a href="/docs">Documentation</a></li>
</ul>
</nav>
<main>
<h1>Main Content</h1>
<p>This paragraph contains the actual content we want.</p>
</main>
</body>
</html>`

		result, err := newExtractor(t).Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "actual content we want")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("reflows content text to the configured width", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Article Title</h1>
<p>Article body with substantive content for readers who expect the text to arrive wrapped at a fixed width no matter how long the source line was.</p>
</article>
</body>
</html>`

		opts := distill.DefaultOptions()
		opts.MaxLength = 40
		ext, err := trafilatura.NewExtractor(opts)
		require.NoError(t, err)

		result, err := ext.Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Contains(t, result.Text, "substantive content")
		for _, line := range strings.Split(result.Text, "\n") {
			assert.LessOrEqual(t, len(line), 40)
		}
	})

	t.Run("annotates links that survive extraction", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Documentation</h1>
<p>This is important documentation content that should be extracted.</p>
<p>See the <a href="/reference">reference</a> for more details about it.</p>
</article>
</body>
</html>`

		result, err := newExtractor(t).Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Contains(t, result.Text, "[https://example.com/reference]")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := newExtractor(t).Extract("", "https://example.com")

		require.Error(t, err)
		assert.Equal(t, distill.EINVALID, distill.ErrorCode(err))
	})

	t.Run("returns EINVALID for base URL without scheme", func(t *testing.T) {
		t.Parallel()

		_, err := newExtractor(t).Extract("<p>hi</p>", "example.com")

		require.Error(t, err)
		assert.Equal(t, distill.EINVALID, distill.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		result, err := newExtractor(t).Extract(html, "https://example.com")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}

func TestNewExtractor_InvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := trafilatura.NewExtractor(distill.Options{Strategy: "nope", MaxLength: 80})

	require.Error(t, err)
	assert.Equal(t, distill.EINVALID, distill.ErrorCode(err))
}
