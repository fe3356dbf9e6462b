package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/the-notepublisher/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmbed(t *testing.T) {
	tests := []struct {
		name    string
		embed   string // input
		invalid bool   // output
		src     string // output
		width   string // output
		height  string // output
		align   markdown.Alignment
	}{
		{
			name:    "Invalid",
			embed:   "not an embed",
			invalid: true,
		},
		{
			name:    "Wikilink without bang",
			embed:   "[[picture.png]]",
			invalid: true,
		},
		{
			name:  "No option",
			embed: "![[picture.png]]",
			src:   "picture.png",
		},
		{
			name:  "Width only",
			embed: "![[picture.png|100]]",
			src:   "picture.png",
			width: "100",
		},
		{
			name:   "Width and height",
			embed:  "![[picture.png|100x50]]",
			src:    "picture.png",
			width:  "100",
			height: "50",
		},
		{
			name:  "Alignment only",
			embed: "![[picture.png|center]]",
			src:   "picture.png",
			align: markdown.AlignCenter,
		},
		{
			name:   "Alignment and dimensions",
			embed:  "![[picture.png|200x100|left]]",
			src:    "picture.png",
			width:  "200",
			height: "100",
			align:  markdown.AlignLeft,
		},
		{
			name:  "Last alignment wins",
			embed: "![[picture.png|left|right]]",
			src:   "picture.png",
			align: markdown.AlignRight,
		},
		{
			name:  "Options are order-independent",
			embed: "![[picture.png|center|100]]",
			src:   "picture.png",
			width: "100",
			align: markdown.AlignCenter,
		},
		{
			name:  "Unrecognized option is ignored",
			embed: "![[picture.png|figure1|100]]",
			src:   "picture.png",
			width: "100",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := markdown.NewEmbed(tt.embed)
			if tt.invalid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.src, actual.Src)
			assert.Equal(t, tt.width, actual.Width)
			assert.Equal(t, tt.height, actual.Height)
			assert.Equal(t, tt.align, actual.Align)
		})
	}
}

func TestEmbedToHTML(t *testing.T) {
	tests := []struct {
		name     string
		embed    string // input
		expected string // output
	}{
		{
			name:     "Bare",
			embed:    "![[picture.png]]",
			expected: `<img src="picture.png" alt=""/>`,
		},
		{
			name:     "Width only",
			embed:    "![[picture.png|100]]",
			expected: `<img src="picture.png" alt="" width="100"/>`,
		},
		{
			name:     "Width and height",
			embed:    "![[picture.png|100x50]]",
			expected: `<img src="picture.png" alt="" width="100" height="50"/>`,
		},
		{
			name:     "Aligned",
			embed:    "![[picture.png|center]]",
			expected: `<figure class="aligncenter"><img src="picture.png" alt=""/></figure>`,
		},
		{
			// Documented quirk: an alignment suppresses the width/height
			// attributes entirely; the dimensions move to an inline style.
			name:     "Alignment takes precedence over dimensions",
			embed:    "![[picture.png|100x50|right]]",
			expected: `<figure class="alignright"><img src="picture.png" alt="" style="width:100px;height:50px;"/></figure>`,
		},
		{
			name:     "Alignment with width only",
			embed:    "![[picture.png|100|left]]",
			expected: `<figure class="alignleft"><img src="picture.png" alt="" style="width:100px;"/></figure>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embed, err := markdown.NewEmbed(tt.embed)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, embed.ToHTML())
		})
	}
}

func TestEmbedString(t *testing.T) {
	tests := []struct {
		name     string
		embed    markdown.Embed
		expected string
	}{
		{
			name:     "Bare",
			embed:    markdown.Embed{Src: "picture.png"},
			expected: "![[picture.png]]",
		},
		{
			name:     "Width only",
			embed:    markdown.Embed{Src: "picture.png", Width: "100"},
			expected: "![[picture.png|100]]",
		},
		{
			name:     "Dimensions and alignment",
			embed:    markdown.Embed{Src: "picture.png", Width: "100", Height: "50", Align: markdown.AlignCenter},
			expected: "![[picture.png|100x50|center]]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.embed.String())
		})
	}
}

func TestDocumentEmbeds(t *testing.T) {
	document := markdown.Document(`
# Note

![[first.png|100]]

Some text with ![[second.png|center]] inline.

A wikilink [[not-an-embed]] is ignored.
`)
	embeds := document.Embeds()
	require.Len(t, embeds, 2)
	assert.Equal(t, "first.png", embeds[0].Src)
	assert.Equal(t, "100", embeds[0].Width)
	assert.Equal(t, "second.png", embeds[1].Src)
	assert.Equal(t, markdown.AlignCenter, embeds[1].Align)
}
