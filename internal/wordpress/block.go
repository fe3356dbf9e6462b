package wordpress

import (
	"strings"
)

// BlockType identifies a Gutenberg block kind.
type BlockType string

const (
	TypeHeading   BlockType = "heading"
	TypeParagraph BlockType = "paragraph"
	TypeImage     BlockType = "image"
	TypeList      BlockType = "list"
	TypeTable     BlockType = "table"
	TypeCode      BlockType = "code"
	TypeQuote     BlockType = "quote"
	TypeSeparator BlockType = "separator"
	TypeSpacer    BlockType = "spacer"
	TypeAlert     BlockType = "alert"

	// TypePreserved marks content already delimited in the input.
	// Preserved blocks are serialized verbatim.
	TypePreserved BlockType = "preserved"
)

// Block is a single Gutenberg block in document order.
type Block struct {
	// Type of the block.
	Type BlockType
	// Attrs is the JSON attributes payload following the type in the opening
	// delimiter. May be empty.
	Attrs string
	// Body is the literal inner markup of the block (or the captured verbatim
	// text for preserved blocks).
	Body string
}

// Markup serializes the block between its comment delimiters.
func (b Block) Markup() string {
	if b.Type == TypePreserved {
		return b.Body
	}

	var sb strings.Builder
	sb.WriteString("<!-- wp:")
	sb.WriteString(string(b.Type))
	if b.Attrs != "" {
		sb.WriteString(" ")
		sb.WriteString(b.Attrs)
	}
	sb.WriteString(" -->\n")
	sb.WriteString(b.Body)
	sb.WriteString("\n<!-- /wp:")
	sb.WriteString(string(b.Type))
	sb.WriteString(" -->")
	return sb.String()
}

// Assemble joins the ordered block list, separating blocks by a blank line.
func Assemble(blocks []Block) string {
	var parts []string
	for _, block := range blocks {
		parts = append(parts, block.Markup())
	}
	return strings.Join(parts, "\n\n")
}
