package core

import (
	"github.com/julien-sobczak/the-notepublisher/internal/markdown"
	"github.com/julien-sobczak/the-notepublisher/internal/medias"
	"github.com/julien-sobczak/the-notepublisher/internal/wordpress"
)

// Publisher converts Markdown notes into WordPress block markup.
//
// The two stages run synchronously on a single goroutine: the embed syntax
// extension executes during the Markdown render pass, and the block segmenter
// executes once over the rendered HTML. A Publisher keeps no per-document
// state and can be reused across notes.
type Publisher struct {
	resolver medias.Resolver
	renderer *markdown.Renderer
}

// NewPublisher initializes a publisher from the current configuration.
func NewPublisher() *Publisher {
	config := CurrentConfig()

	var resolver medias.Resolver
	if config.ConfigFile.Medias.BaseURL != "" {
		resolver = medias.BaseURLResolver{
			BaseURL: config.ConfigFile.Medias.BaseURL,
		}
	}

	return NewPublisherWithResolver(resolver)
}

// NewPublisherWithResolver initializes a publisher with an explicit media
// resolver. A nil resolver leaves embed references untouched.
func NewPublisherWithResolver(resolver medias.Resolver) *Publisher {
	renderer := markdown.NewRenderer()
	renderer.OnEmbed(func(src, width, height string) {
		CurrentLogger().Debugf("Found embed %q (width=%q, height=%q)", src, width, height)
	})
	return &Publisher{
		resolver: resolver,
		renderer: renderer,
	}
}

// OnEmbed overrides the observer notified for each embed discovered during
// the render pass.
func (p *Publisher) OnEmbed(observer markdown.EmbedObserver) {
	p.renderer.OnEmbed(observer)
}

// Convert runs the two-stage pipeline on a single note and returns the
// final block markup. Convert never fails: malformed input degrades to
// paragraph blocks.
func (p *Publisher) Convert(note string) string {
	_, body := markdown.StripFrontMatter(note)
	html := p.renderHTML(body)
	blocks := wordpress.Segment(html)
	return wordpress.Assemble(blocks)
}

// RenderHTML runs only the first stage and returns the intermediate HTML.
func (p *Publisher) RenderHTML(note string) string {
	_, body := markdown.StripFrontMatter(note)
	return p.renderHTML(body)
}

func (p *Publisher) renderHTML(body markdown.Document) string {
	document := body.MustTransform(
		markdown.ResolveEmbeds(p.resolveEmbed),
		markdown.SquashBlankLines(),
	)
	return p.renderer.ToHTML(document)
}

// resolveEmbed rewrites a single embed reference. The original reference is
// kept when no resolver is configured or the resolution fails.
func (p *Publisher) resolveEmbed(src string) string {
	if p.resolver == nil {
		return src
	}
	url, err := p.resolver.Resolve(src)
	if err != nil {
		CurrentLogger().Warnf("Unable to resolve embed %q: %v", src, err)
		return src
	}
	return url
}
