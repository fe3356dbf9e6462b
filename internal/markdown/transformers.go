package markdown

import (
	"github.com/julien-sobczak/the-notepublisher/pkg/text"
)

// Transformer applies changes on a Markdown document
type Transformer func(document Document) (Document, error)

// Transform applies transformers successively to create a new Markdown document
func (m Document) Transform(transformers ...Transformer) (Document, error) {
	result := m
	for _, transformer := range transformers {
		resultTransformed, err := transformer(result)
		if err != nil {
			return m, err
		}
		result = resultTransformed
	}
	return result, nil
}

// MustTransform is similar to Transform but does not expect an error
func (m Document) MustTransform(transformers ...Transformer) Document {
	result, err := m.Transform(transformers...)
	if err != nil {
		panic(err)
	}
	return result
}

/*
 * Transformers
 */

// ResolveEmbeds is a Markdown transformer to rewrite the reference of every
// embed in the document, preserving the display options.
// The resolver receives the reference name and returns the replacement.
func ResolveEmbeds(resolve func(src string) string) Transformer {
	return func(document Document) (Document, error) {
		result := regexEmbed.ReplaceAllStringFunc(string(document), func(match string) string {
			groups := regexEmbed.FindStringSubmatch(match)
			return "![[" + resolve(groups[1]) + groups[2] + "]]"
		})
		return Document(result), nil
	}
}

// SquashBlankLines is a Markdown transformer to replace successive blank lines
// by a single empty one.
func SquashBlankLines() Transformer {
	return func(document Document) (Document, error) {
		return Document(text.SquashBlankLines(string(document))), nil
	}
}
