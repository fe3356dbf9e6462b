package core_test

import (
	"strings"
	"testing"

	"github.com/julien-sobczak/the-notepublisher/internal/core"
	"github.com/julien-sobczak/the-notepublisher/internal/medias"
	"github.com/julien-sobczak/the-notepublisher/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherConvert(t *testing.T) {
	publisher := core.NewPublisherWithResolver(nil)

	input := string(testutil.GoldenFileNamed(t, "TestPublisherConvert.md"))
	expected := string(testutil.GoldenFileNamed(t, "TestPublisherConvert.blocks.html"))

	actual := publisher.Convert(input)
	assert.Equal(t, strings.TrimSpace(expected), actual)
}

func TestPublisherConvertEmbeds(t *testing.T) {
	publisher := core.NewPublisherWithResolver(medias.BaseURLResolver{
		BaseURL: "https://example.com/uploads",
	})

	actual := publisher.Convert("![[My Picture.png|100]]\n")

	// The embed is resolved, rendered with its width, and promoted to an
	// image block as the sole content of its paragraph.
	assert.Contains(t, actual, "<!-- wp:image")
	assert.Contains(t, actual, `src="https://example.com/uploads/my-picture.png"`)
}

func TestPublisherConvertFrontMatter(t *testing.T) {
	publisher := core.NewPublisherWithResolver(nil)

	actual := publisher.Convert("---\ntitle: A Note\n---\nHello\n")

	assert.NotContains(t, actual, "title:")
	assert.Contains(t, actual, "<!-- wp:paragraph -->\n<p>Hello</p>\n<!-- /wp:paragraph -->")
}

func TestPublisherOnEmbed(t *testing.T) {
	publisher := core.NewPublisherWithResolver(nil)

	var seen []string
	publisher.OnEmbed(func(src, width, height string) {
		seen = append(seen, src)
	})

	publisher.Convert("![[a.png|100]]\n\n![[b.png]]\n")

	assert.Equal(t, []string{"a.png", "b.png"}, seen)
}

func TestPublisherConvertOrdering(t *testing.T) {
	publisher := core.NewPublisherWithResolver(nil)

	actual := publisher.Convert("## Title\n\nHello\n\n![[a.png]]\n\n> [!warning] Careful\n> Do X\n")

	// Blocks follow document order through the whole pipeline.
	heading := strings.Index(actual, "<!-- wp:heading -->")
	paragraph := strings.Index(actual, "<!-- wp:paragraph -->")
	image := strings.Index(actual, "<!-- wp:image")
	alert := strings.Index(actual, "<!-- wp:alert")
	require.NotEqual(t, -1, heading)
	require.NotEqual(t, -1, paragraph)
	require.NotEqual(t, -1, image)
	require.NotEqual(t, -1, alert)
	assert.Less(t, heading, paragraph)
	assert.Less(t, paragraph, image)
	assert.Less(t, image, alert)

	assert.Contains(t, actual, `<!-- wp:alert {"type":"warning","title":"Careful"} -->`)
	assert.Contains(t, actual, "<p>Do X</p>")
}

func TestPublisherConvertMalformedInput(t *testing.T) {
	publisher := core.NewPublisherWithResolver(nil)

	// Unterminated constructs must degrade, never fail.
	inputs := []string{
		"<table>\n<tr><td>X</td></tr>",
		"<!-- wp:quote -->\n<blockquote>X</blockquote>",
		"<p>Unclosed paragraph",
		"<pre><code>unclosed",
		"---\ntitle: unclosed front matter",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			publisher.Convert(input)
		})
	}
}

func TestPublisherRenderHTML(t *testing.T) {
	publisher := core.NewPublisherWithResolver(nil)

	actual := publisher.RenderHTML("## Title\n\n![[a.png|center]]\n")

	require.Contains(t, actual, "<h2>Title</h2>")
	assert.Contains(t, actual, `<figure class="aligncenter"><img src="a.png" alt=""/></figure>`)
	// No segmentation at this stage
	assert.NotContains(t, actual, "<!-- wp:")
}
