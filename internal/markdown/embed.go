package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/julien-sobczak/the-notepublisher/pkg/text"
)

// Regex to match embeds. Same `[[...]]` family as wikilinks, prefixed by `!`,
// with optional pipe-delimited options.
// Ex: ![[picture.png|200x100|center]]
const regexEmbedRaw = `!\[\[([^|\]\n]+)((?:\|[^|\]\n]+)*)\]\]`

var regexEmbed = regexp.MustCompile(regexEmbedRaw)
var regexEmbedAnchored = regexp.MustCompile(`^` + regexEmbedRaw)

var regexDimensions = regexp.MustCompile(`^(\d+)x(\d+)$`)

// Alignment of an embedded image.
type Alignment string

const (
	AlignNone   Alignment = ""
	AlignCenter Alignment = "center"
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
)

// ParseAlignment reads an embed option as an alignment keyword.
func ParseAlignment(option string) (Alignment, bool) {
	switch Alignment(option) {
	case AlignCenter:
		return AlignCenter, true
	case AlignLeft:
		return AlignLeft, true
	case AlignRight:
		return AlignRight, true
	}
	return AlignNone, false
}

// Embed is an embedded wikilink carrying optional display options.
type Embed struct {
	Src    string
	Width  string
	Height string
	Align  Alignment
}

// NewEmbed parses the embed notation.
func NewEmbed(raw string) (*Embed, error) {
	match := regexEmbed.FindStringSubmatch(raw)
	if match == nil {
		return nil, fmt.Errorf("invalid embed %q", raw)
	}
	embed := &Embed{
		Src: match[1],
	}
	for _, option := range parseOptions(match[2]) {
		embed.applyOption(option)
	}
	return embed, nil
}

// parseOptions splits the raw pipe-delimited options. Ex: "|200x100|center"
func parseOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(raw, "|"), "|")
}

// applyOption classifies a single option. Options are applied left-to-right
// and the last alignment keyword wins. Unrecognized options are ignored to
// stay forward-compatible with new modifiers.
func (e *Embed) applyOption(option string) {
	if align, ok := ParseAlignment(option); ok {
		e.Align = align
		return
	}
	if match := regexDimensions.FindStringSubmatch(option); match != nil {
		e.Width = match[1]
		e.Height = match[2]
		return
	}
	if text.IsNumber(option) {
		e.Width = option
	}
}

// Sized indicates if at least a width was specified.
func (e *Embed) Sized() bool {
	return e.Width != ""
}

// Aligned indicates if an alignment keyword was specified.
func (e *Embed) Aligned() bool {
	return e.Align != AlignNone
}

// ToHTML renders the embed as image markup.
//
// An alignment takes precedence over the width/height attributes: the image
// is wrapped in a figure and the dimensions move to an inline style.
// (This mirrors the historical behavior and is covered by tests.)
func (e *Embed) ToHTML() string {
	switch {
	case e.Aligned():
		var style string
		if e.Width != "" && e.Height != "" {
			style = fmt.Sprintf(` style="width:%spx;height:%spx;"`, e.Width, e.Height)
		} else if e.Width != "" {
			style = fmt.Sprintf(` style="width:%spx;"`, e.Width)
		}
		return fmt.Sprintf(`<figure class="align%s"><img src=%q alt=""%s/></figure>`, e.Align, e.Src, style)
	case e.Width != "" && e.Height != "":
		return fmt.Sprintf(`<img src=%q alt="" width=%q height=%q/>`, e.Src, e.Width, e.Height)
	case e.Width != "":
		return fmt.Sprintf(`<img src=%q alt="" width=%q/>`, e.Src, e.Width)
	default:
		return fmt.Sprintf(`<img src=%q alt=""/>`, e.Src)
	}
}

func (e Embed) String() string {
	var sb strings.Builder
	sb.WriteString("![[")
	sb.WriteString(e.Src)
	if e.Width != "" && e.Height != "" {
		sb.WriteString("|")
		sb.WriteString(e.Width)
		sb.WriteString("x")
		sb.WriteString(e.Height)
	} else if e.Width != "" {
		sb.WriteString("|")
		sb.WriteString(e.Width)
	}
	if e.Aligned() {
		sb.WriteString("|")
		sb.WriteString(string(e.Align))
	}
	sb.WriteString("]]")
	return sb.String()
}

/*
 * Document
 */

// Embeds searches for embedded wikilinks inside a Markdown document.
func (m Document) Embeds() []Embed {
	var results []Embed
	for _, match := range regexEmbed.FindAllString(string(m), -1) {
		embed, err := NewEmbed(match)
		if err != nil {
			continue
		}
		results = append(results, *embed)
	}
	return results
}
