package goquery_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/typgrab"
	"github.com/fwojciec/typgrab/goquery"
	"github.com/fwojciec/typgrab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_TextEscaping(t *testing.T) {
	t.Parallel()

	html := `<html><body><article><p>a*b_c` + "`" + `d$e#f[g]h&lt;i&gt;j@k</p></article></body></html>`

	result := convert(t, html, "")

	assert.Contains(t, result.Article.Content, `a\*b\_c\`+"`"+`d\$e\#f\[g\]h\<i\>j\@k`)
}

func TestRenderer_Blocks(t *testing.T) {
	t.Parallel()

	t.Run("paragraph gets two trailing line breaks", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><p>Hello</p></article></body></html>`, "")
		assert.Equal(t, "Hello\n\n", result.Article.Content)
	})

	t.Run("whitespace-only paragraph is suppressed", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><p>   </p></article></body></html>`, "")
		assert.Empty(t, strings.TrimSpace(result.Article.Content))
	})

	t.Run("headings repeat the marker by level", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><h1>One</h1><h3>Three</h3><h6>Six</h6></article></body></html>`, "")

		assert.Contains(t, result.Article.Content, "= One\n\n")
		assert.Contains(t, result.Article.Content, "=== Three\n\n")
		assert.Contains(t, result.Article.Content, "====== Six\n\n")
	})

	t.Run("blockquote wraps content", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><blockquote>Wise words</blockquote></article></body></html>`, "")
		assert.Equal(t, "#quote(block: true)[Wise words]\n\n", result.Article.Content)
	})

	t.Run("br is a single newline", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><p>a<br>b</p></article></body></html>`, "")
		assert.Equal(t, "a\nb\n\n", result.Article.Content)
	})
}

func TestRenderer_Inline(t *testing.T) {
	t.Parallel()

	t.Run("strong and b", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><p><strong>very</strong> <b>bold</b></p></article></body></html>`, "")
		assert.Equal(t, "#strong[very] #strong[bold]\n\n", result.Article.Content)
	})

	t.Run("em and i", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><p><em>so</em> <i>subtle</i></p></article></body></html>`, "")
		assert.Equal(t, "#emph[so] #emph[subtle]\n\n", result.Article.Content)
	})

	t.Run("blank emphasis is suppressed", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><p><strong>  </strong>ok</p></article></body></html>`, "")
		assert.Equal(t, "ok\n\n", result.Article.Content)
	})

	t.Run("unrecognized tags pass children through", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><p><span>kept</span> <u>also kept</u></p></article></body></html>`, "")
		assert.Equal(t, "kept also kept\n\n", result.Article.Content)
	})
}

func TestRenderer_Lists(t *testing.T) {
	t.Parallel()

	t.Run("ordered list keeps source order with ordinal markers", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><ol><li>A</li><li>B</li></ol></article></body></html>`, "")
		assert.Equal(t, "+ A\n+ B\n\n", result.Article.Content)
	})

	t.Run("unordered list uses bullet markers", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><ul><li>A</li><li>B</li></ul></article></body></html>`, "")
		assert.Equal(t, "- A\n- B\n\n", result.Article.Content)
	})

	t.Run("item content is rendered and trimmed", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><ul><li> <em>styled</em> item </li></ul></article></body></html>`, "")
		assert.Equal(t, "- #emph[styled] item\n\n", result.Article.Content)
	})
}

func TestRenderer_Links(t *testing.T) {
	t.Parallel()

	t.Run("resolves href against base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p><a href="/about">About</a></p></article></body></html>`
		result := convert(t, html, "https://example.com/post/1")

		assert.Contains(t, result.Article.Content, `#link("https://example.com/about")[About]`)
	})

	t.Run("link wrapping an image collapses to the image", func(t *testing.T) {
		t.Parallel()

		wrapped := `<html><body><article><p><a href="https://example.com/big"><img src="https://cdn.example.com/pic.png"></a></p></article></body></html>`
		bare := `<html><body><article><p><img src="https://cdn.example.com/pic.png"></p></article></body></html>`

		wrappedResult := convert(t, wrapped, "")
		bareResult := convert(t, bare, "")

		assert.Equal(t, bareResult.Article.Content, wrappedResult.Article.Content)
		assert.NotContains(t, wrappedResult.Article.Content, "#link")
	})

	t.Run("image-filename link text is suppressed", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p>Before <a href="https://cdn.example.com/full.jpg">photo.jpg</a> after</p></article></body></html>`
		result := convert(t, html, "")

		assert.NotContains(t, result.Article.Content, "photo.jpg")
		assert.NotContains(t, result.Article.Content, "#link")
	})
}

func TestRenderer_Images(t *testing.T) {
	t.Parallel()

	t.Run("emits a figure referencing the local path", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><p><img src="https://cdn.example.com/pic.png"></p></article></body></html>`
		result := convert(t, html, "")

		assert.Contains(t, result.Article.Content, `#figure(image("images/pic.png"), caption: [])`)
	})

	t.Run("identical sources resolve to the same local path", func(t *testing.T) {
		t.Parallel()

		var urls []string
		images := &mock.ImageStore{
			MaterializeFn: func(_ context.Context, url string) (string, error) {
				urls = append(urls, url)
				return "images/same.png", nil
			},
		}

		html := `<html><body><article>
			<p><img src="https://cdn.example.com/pic.png"></p>
			<p><img src="https://cdn.example.com/pic.png"></p>
		</article></body></html>`

		conv := goquery.NewConverter(images)
		result, err := conv.Convert(context.Background(), html, "")
		require.NoError(t, err)

		require.Len(t, urls, 2)
		assert.Equal(t, urls[0], urls[1])
		assert.Equal(t, 2, strings.Count(result.Article.Content, `"images/same.png"`))
	})

	t.Run("materialization failure suppresses the figure", func(t *testing.T) {
		t.Parallel()

		images := &mock.ImageStore{
			MaterializeFn: func(_ context.Context, url string) (string, error) {
				return "", typgrab.Errorf(typgrab.EUNAVAILABLE, "boom")
			},
		}

		html := `<html><body><article><p><img src="https://cdn.example.com/pic.png"></p></article></body></html>`
		conv := goquery.NewConverter(images)
		result, err := conv.Convert(context.Background(), html, "")
		require.NoError(t, err)

		assert.NotContains(t, result.Article.Content, "#figure")
	})

	t.Run("image without source is suppressed", func(t *testing.T) {
		t.Parallel()

		result := convert(t, `<html><body><article><p><img alt="no src"></p></article></body></html>`, "")
		assert.NotContains(t, result.Article.Content, "#figure")
	})
}

func TestRenderer_Suppression(t *testing.T) {
	t.Parallel()

	t.Run("script style and noscript", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
			<p>Visible</p>
			<script>alert("no")</script>
			<style>p { color: red }</style>
			<noscript>enable js</noscript>
		</article></body></html>`

		result := convert(t, html, "")

		assert.Contains(t, result.Article.Content, "Visible")
		assert.NotContains(t, result.Article.Content, "alert")
		assert.NotContains(t, result.Article.Content, "color")
		assert.NotContains(t, result.Article.Content, "enable js")
	})

	t.Run("aside and header", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
			<header><h1>Dup title</h1></header>
			<aside><p>Author bio</p></aside>
			<p>Body</p>
		</article></body></html>`

		result := convert(t, html, "")

		assert.Contains(t, result.Article.Content, "Body")
		assert.NotContains(t, result.Article.Content, "Dup title")
		assert.NotContains(t, result.Article.Content, "Author bio")
	})

	t.Run("print layout wrappers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
			<div class="post__title__wrapper"><h1>Duplicate</h1></div>
			<div class="series-nav"><a href="/next">Next post</a></div>
			<section class="d-print-none"><p>Screen only</p></section>
			<p>Body</p>
		</article></body></html>`

		result := convert(t, html, "")

		assert.Contains(t, result.Article.Content, "Body")
		assert.NotContains(t, result.Article.Content, "Duplicate")
		assert.NotContains(t, result.Article.Content, "Next post")
		assert.NotContains(t, result.Article.Content, "Screen only")
	})
}

func TestRenderer_DataWrapperEmbed(t *testing.T) {
	t.Parallel()

	t.Run("renders a captioned full-width figure", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
			<div class="datawrapper-wrap" data-attrs='{"thumbnail_url":"https://cdn.example.com/chart.png","title":"GDP Growth","description":"Quarterly change"}'></div>
		</article></body></html>`

		result := convert(t, html, "")

		assert.Contains(t, result.Article.Content, `image("images/chart.png", width: 100%)`)
		assert.Contains(t, result.Article.Content, "#strong[GDP Growth] Quarterly change")
	})

	t.Run("prefers thumbnail_url over thumbnail_url_full", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
			<div class="datawrapper-wrap" data-attrs='{"thumbnail_url":"https://cdn.example.com/small.png","thumbnail_url_full":"https://cdn.example.com/full.png"}'></div>
		</article></body></html>`

		result := convert(t, html, "")

		assert.Contains(t, result.Article.Content, "images/small.png")
		assert.NotContains(t, result.Article.Content, "images/full.png")
	})

	t.Run("malformed attributes fall through to child rendering", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
			<div class="datawrapper-wrap" data-attrs='{broken'><p>Fallback text</p></div>
		</article></body></html>`

		result := convert(t, html, "")

		assert.NotContains(t, result.Article.Content, "#figure")
		assert.Contains(t, result.Article.Content, "Fallback text")
	})

	t.Run("materialization failure falls through", func(t *testing.T) {
		t.Parallel()

		images := &mock.ImageStore{
			MaterializeFn: func(_ context.Context, url string) (string, error) {
				return "", typgrab.Errorf(typgrab.EUNAVAILABLE, "boom")
			},
		}

		html := `<html><body><article>
			<div class="datawrapper-wrap" data-attrs='{"thumbnail_url":"https://cdn.example.com/chart.png"}'><p>Fallback text</p></div>
		</article></body></html>`

		conv := goquery.NewConverter(images)
		result, err := conv.Convert(context.Background(), html, "")
		require.NoError(t, err)

		assert.NotContains(t, result.Article.Content, "#figure")
		assert.Contains(t, result.Article.Content, "Fallback text")
	})
}
