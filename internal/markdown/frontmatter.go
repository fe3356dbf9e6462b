package markdown

import (
	"strings"

	"github.com/julien-sobczak/the-notepublisher/pkg/text"
	"gopkg.in/yaml.v3"
)

// FrontMatter represents the YAML Front Matter of a note.
type FrontMatter string

// StripFrontMatter splits a note into its front matter and its body.
// Notes without a front matter return an empty one and the body unchanged.
func StripFrontMatter(note string) (FrontMatter, Document) {
	iterator := text.NewLineIteratorFromText(note)
	if !iterator.HasNext() || strings.TrimSpace(iterator.Next().Text) != "---" {
		return "", Document(note)
	}

	var frontMatter []string
	for iterator.HasNext() {
		line := iterator.Next()
		if strings.TrimSpace(line.Text) == "---" {
			var body []string
			for iterator.HasNext() {
				body = append(body, iterator.Next().Text)
			}
			return FrontMatter(strings.Join(frontMatter, "\n")), Document(strings.Join(body, "\n"))
		}
		frontMatter = append(frontMatter, line.Text)
	}

	// Unclosed front matter = not a front matter
	return "", Document(note)
}

// AsMap parses the front matter attributes.
func (f FrontMatter) AsMap() (map[string]any, error) {
	var attributes = make(map[string]any)
	if err := yaml.Unmarshal([]byte(f), attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}

// Title returns the "title" attribute when present.
func (f FrontMatter) Title() string {
	attributes, err := f.AsMap()
	if err != nil {
		return ""
	}
	if title, ok := attributes["title"].(string); ok {
		return title
	}
	return ""
}
