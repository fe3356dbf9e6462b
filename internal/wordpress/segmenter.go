package wordpress

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/julien-sobczak/the-notepublisher/internal/helpers"
	"github.com/julien-sobczak/the-notepublisher/pkg/text"
)

// The segmenter is a line-oriented scanner over rendered HTML. It does not
// build a DOM: every rule is a regex over a line, and multi-line constructs
// are consumed by counting opening/closing tags until the balance is restored.

var (
	regexPreservedOpen  = regexp.MustCompile(`<!-- wp:([a-z][a-z0-9/-]*)( \{.*?\})? -->`)
	regexHeading        = regexp.MustCompile(`^<h([1-6])[^>]*>(.*)</h[1-6]>$`)
	regexHorizontalRule = regexp.MustCompile(`^<hr\s*/?>$`)
	regexLineBreak      = regexp.MustCompile(`^<br\s*/?>$`)
	regexTableOpen      = regexp.MustCompile(`^<table[^>]*>`)
	regexCodeOpen       = regexp.MustCompile(`^<pre[^>]*>`)
	regexUnorderedOpen  = regexp.MustCompile(`^<ul[^>]*>`)
	regexOrderedOpen    = regexp.MustCompile(`^<ol[^>]*>`)
	regexQuoteOpen      = regexp.MustCompile(`^<blockquote[^>]*>`)
	regexParagraphOpen  = regexp.MustCompile(`^<p>`)

	regexCodeWrapperOpen   = regexp.MustCompile(`^<pre[^>]*>(<code[^>]*>)?`)
	regexCodeWrapperClose  = regexp.MustCompile(`(</code>)?</pre>$`)
	regexQuoteWrapperOpen  = regexp.MustCompile(`^<blockquote[^>]*>\n?`)
	regexQuoteWrapperClose = regexp.MustCompile(`\n?</blockquote>$`)

	regexImageOnly   = regexp.MustCompile(`^<img[^>]*/?>$`)
	regexImageSource = regexp.MustCompile(`src="([^"]*)"`)

	regexTag = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9]*)[^>]*>`)
)

// Tags kept by the residual-text fallback.
var inlineTags = map[string]bool{
	"code":   true,
	"strong": true,
	"em":     true,
	"b":      true,
	"i":      true,
}

// Segment partitions rendered HTML into an ordered list of Gutenberg blocks.
// Content already wrapped in block delimiters is preserved verbatim; the rest
// is segmented line by line. Blocks are returned in document order.
func Segment(html string) []Block {
	var blocks []Block
	for _, r := range partition(html) {
		if r.preserved {
			blocks = append(blocks, Block{Type: TypePreserved, Body: r.text})
			continue
		}
		blocks = append(blocks, segmentRegion(r.text)...)
	}
	return blocks
}

// region is a contiguous span of input: either raw HTML to segment, or a
// block already in target format.
type region struct {
	text      string
	preserved bool
}

// partition splits the input into an alternating sequence of raw regions and
// preserved blocks, in document order.
func partition(html string) []region {
	var regions []region
	rest := html
	for {
		loc := regexPreservedOpen.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		blockType := rest[loc[2]:loc[3]]
		closing := "<!-- /wp:" + blockType + " -->"

		stop := len(rest)
		if end := strings.Index(rest[loc[1]:], closing); end >= 0 {
			stop = loc[1] + end + len(closing)
		}
		// An unterminated block is preserved through end of input.

		if before := rest[:loc[0]]; !text.IsBlank(before) {
			regions = append(regions, region{text: before})
		}
		regions = append(regions, region{
			text:      strings.TrimSpace(rest[loc[0]:stop]),
			preserved: true,
		})
		rest = rest[stop:]
	}
	if !text.IsBlank(rest) {
		regions = append(regions, region{text: rest})
	}
	return regions
}

// matcher inspects the lines starting at the cursor and returns the block and
// the number of lines consumed, or ok=false when the rule does not apply.
type matcher func(lines []string, i int) (block Block, consumed int, ok bool)

// Ordered rules. The first match wins.
var matchers = []matcher{
	matchHeading,
	matchHorizontalRule,
	matchTable,
	matchCode,
	matchUnorderedList,
	matchOrderedList,
	matchQuote,
	matchParagraph,
	matchLineBreak,
}

// segmentRegion scans one raw region and emits a block per recognized
// construct. Lines without a recognizable structure degrade to paragraph
// blocks of their residual text: non-whitespace content is never dropped.
func segmentRegion(raw string) []Block {
	var blocks []Block
	lines := strings.Split(raw, "\n")
	i := 0
	for i < len(lines) {
		if text.IsBlank(lines[i]) {
			i++
			continue
		}

		matched := false
		for _, match := range matchers {
			if block, consumed, ok := match(lines, i); ok {
				blocks = append(blocks, block)
				i += consumed
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// Fallback: keep only inlinable tags and emit the residual text.
		if residual := stripTags(strings.TrimSpace(lines[i])); !text.IsBlank(residual) {
			blocks = append(blocks, Block{
				Type: TypeParagraph,
				Body: "<p>" + strings.TrimSpace(residual) + "</p>",
			})
		}
		i++
	}
	return blocks
}

/*
 * Single-line rules
 */

func matchHeading(lines []string, i int) (Block, int, bool) {
	line := strings.TrimSpace(lines[i])
	match := regexHeading.FindStringSubmatch(line)
	if match == nil {
		return Block{}, 0, false
	}
	level, _ := strconv.Atoi(match[1])
	var attrs string
	if level != 2 { // 2 is the Gutenberg default
		attrs = fmt.Sprintf(`{"level":%d}`, level)
	}
	return Block{Type: TypeHeading, Attrs: attrs, Body: line}, 1, true
}

func matchHorizontalRule(lines []string, i int) (Block, int, bool) {
	if !regexHorizontalRule.MatchString(strings.TrimSpace(lines[i])) {
		return Block{}, 0, false
	}
	return Block{
		Type:  TypeSeparator,
		Attrs: `{"className":"is-style-wide"}`,
		Body:  `<hr class="wp-block-separator is-style-wide"/>`,
	}, 1, true
}

func matchLineBreak(lines []string, i int) (Block, int, bool) {
	if !regexLineBreak.MatchString(strings.TrimSpace(lines[i])) {
		return Block{}, 0, false
	}
	return Block{
		Type:  TypeSpacer,
		Attrs: `{"height":"40px"}`,
		Body:  `<div style="height:40px" aria-hidden="true" class="wp-block-spacer"></div>`,
	}, 1, true
}

/*
 * Multi-line rules
 */

func matchTable(lines []string, i int) (Block, int, bool) {
	if !regexTableOpen.MatchString(strings.TrimSpace(lines[i])) {
		return Block{}, 0, false
	}
	captured, consumed := captureElement(lines, i, "<table", "</table")
	// Tables with <thead>/<tfoot> produce the same shell; Gutenberg infers
	// the header from the inner markup.
	body := `<figure class="wp-block-table">` + "\n" + captured + "\n" + `</figure>`
	return Block{
		Type:  TypeTable,
		Attrs: `{"hasFixedLayout":true}`,
		Body:  body,
	}, consumed, true
}

func matchCode(lines []string, i int) (Block, int, bool) {
	if !regexCodeOpen.MatchString(strings.TrimSpace(lines[i])) {
		return Block{}, 0, false
	}
	captured, consumed := captureElement(lines, i, "<pre", "</pre")
	interior := strings.TrimSpace(captured)
	interior = regexCodeWrapperOpen.ReplaceAllString(interior, "")
	interior = regexCodeWrapperClose.ReplaceAllString(interior, "")
	interior = strings.TrimRight(interior, "\n")
	body := `<pre class="wp-block-code"><code>` + interior + `</code></pre>`
	return Block{Type: TypeCode, Body: body}, consumed, true
}

func matchUnorderedList(lines []string, i int) (Block, int, bool) {
	if !regexUnorderedOpen.MatchString(strings.TrimSpace(lines[i])) {
		return Block{}, 0, false
	}
	captured, consumed := captureElement(lines, i, "<ul", "</ul")
	return Block{Type: TypeList, Body: captured}, consumed, true
}

func matchOrderedList(lines []string, i int) (Block, int, bool) {
	if !regexOrderedOpen.MatchString(strings.TrimSpace(lines[i])) {
		return Block{}, 0, false
	}
	captured, consumed := captureElement(lines, i, "<ol", "</ol")
	return Block{Type: TypeList, Attrs: `{"ordered":true}`, Body: captured}, consumed, true
}

func matchQuote(lines []string, i int) (Block, int, bool) {
	if !regexQuoteOpen.MatchString(strings.TrimSpace(lines[i])) {
		return Block{}, 0, false
	}
	captured, consumed := captureElement(lines, i, "<blockquote", "</blockquote")
	interior := strings.TrimSpace(captured)
	interior = regexQuoteWrapperOpen.ReplaceAllString(interior, "")
	interior = regexQuoteWrapperClose.ReplaceAllString(interior, "")
	interior = strings.TrimSpace(interior)

	if callout := ExtractCallout(interior); callout != nil {
		return callout.ToBlock(), consumed, true
	}

	body := `<blockquote class="wp-block-quote">` + "\n" + interior + "\n" + `</blockquote>`
	return Block{Type: TypeQuote, Body: body}, consumed, true
}

func matchParagraph(lines []string, i int) (Block, int, bool) {
	if !regexParagraphOpen.MatchString(strings.TrimSpace(lines[i])) {
		return Block{}, 0, false
	}
	captured, consumed := captureElement(lines, i, "<p>", "</p>")
	interior := strings.TrimSpace(captured)
	interior = strings.TrimPrefix(interior, "<p>")
	interior = strings.TrimSuffix(interior, "</p>")
	interior = strings.TrimSpace(interior)

	// A paragraph whose sole content is an image becomes an image block.
	// This check runs before the callout detection: an image-only paragraph
	// cannot also carry a callout marker under the recognized syntax.
	if regexImageOnly.MatchString(interior) {
		return imageBlock(interior), consumed, true
	}

	if callout := ExtractCallout(interior); callout != nil {
		return callout.ToBlock(), consumed, true
	}

	return Block{Type: TypeParagraph, Body: "<p>" + interior + "</p>"}, consumed, true
}

// imageBlock wraps a lone image into a centered, large-size image block.
// The numeric id is derived from the image source: the real attachment id is
// only known after upload, and a stable placeholder keeps the markup
// reproducible between runs.
func imageBlock(img string) Block {
	var src string
	if match := regexImageSource.FindStringSubmatch(img); match != nil {
		src = match[1]
	}
	id := imageID(src)
	attrs := fmt.Sprintf(`{"id":%d,"sizeSlug":"large","linkDestination":"none","align":"center"}`, id)
	body := fmt.Sprintf(`<figure class="wp-block-image aligncenter size-large"><img src=%q alt="" class="wp-image-%d"/></figure>`, src, id)
	return Block{Type: TypeImage, Attrs: attrs, Body: body}
}

func imageID(src string) int {
	sum := helpers.Hash([]byte(src))
	id, _ := strconv.ParseInt(sum[:8], 16, 64)
	return int(id % 100000000)
}

// captureElement consumes lines from i until the matching closing tag,
// inclusive, counting nested openings. An unterminated construct captures
// through end of input.
func captureElement(lines []string, i int, open, close string) (string, int) {
	depth := 0
	for j := i; j < len(lines); j++ {
		depth += strings.Count(lines[j], open)
		depth -= strings.Count(lines[j], close)
		if depth <= 0 {
			return strings.Join(lines[i:j+1], "\n"), j - i + 1
		}
	}
	return strings.Join(lines[i:], "\n"), len(lines) - i
}

// stripTags removes every tag except the inlinable ones.
func stripTags(fragment string) string {
	return regexTag.ReplaceAllStringFunc(fragment, func(tag string) string {
		name := strings.ToLower(regexTag.FindStringSubmatch(tag)[1])
		if inlineTags[name] {
			return tag
		}
		return ""
	})
}
