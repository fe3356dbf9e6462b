package markdown

import (
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// EmbedObserver is notified of every embed discovered during a render pass.
// The callback runs synchronously on the parsing path and must not block or
// reenter the renderer. Width and height may be empty.
type EmbedObserver func(src, width, height string)

// EmbedNode is the AST node emitted when the embed syntax is recognized.
type EmbedNode struct {
	ast.Leaf
	Embed Embed
}

// Renderer converts note Markdown to HTML with the embed syntax enabled.
//
// The embed rule is registered on the `!` trigger character and delegates to
// the standard image rule when the text is not an embed, so regular images
// keep working unchanged.
type Renderer struct {
	observer EmbedObserver
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// OnEmbed registers the observer invoked for each embed.
// Only a single observer is supported.
func (r *Renderer) OnEmbed(observer EmbedObserver) {
	r.observer = observer
}

// ToHTML renders a Markdown document to HTML.
func (r *Renderer) ToHTML(md Document) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)

	var standardImage parser.InlineParser
	parseEmbed := func(p *parser.Parser, data []byte, offset int) (int, ast.Node) {
		consumed, node := r.parseEmbed(data[offset:])
		if consumed == 0 && standardImage != nil {
			// Not an embed. Fall through to the standard image rule.
			return standardImage(p, data, offset)
		}
		return consumed, node
	}
	standardImage = p.RegisterInline('!', parseEmbed)

	opts := html.RendererOptions{
		Flags:          html.CommonFlags,
		RenderNodeHook: r.renderHook,
	}
	renderer := html.NewRenderer(opts)

	return strings.TrimSpace(string(markdown.ToHTML([]byte(md), p, renderer)))
}

// parseEmbed matches the embed syntax at the start of data and returns the
// number of bytes consumed. Returns (0, nil) when the text is not an embed.
func (r *Renderer) parseEmbed(data []byte) (int, ast.Node) {
	loc := regexEmbedAnchored.FindIndex(data)
	if loc == nil {
		return 0, nil
	}
	raw := string(data[:loc[1]])
	embed, err := NewEmbed(raw)
	if err != nil {
		return 0, nil
	}

	if r.observer != nil {
		r.observer(embed.Src, embed.Width, embed.Height)
	}

	node := &EmbedNode{
		Embed: *embed,
	}
	node.Literal = []byte(raw)
	return loc[1], node
}

func (r *Renderer) renderHook(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	embedNode, ok := node.(*EmbedNode)
	if !ok {
		return ast.GoToNext, false
	}
	if entering {
		io.WriteString(w, embedNode.Embed.ToHTML())
	}
	return ast.GoToNext, true
}
