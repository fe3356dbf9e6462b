package wordpress

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CalloutKind enumerates the callout keywords recognized inside paragraphs
// and quotes. Ex: [!info] or [!warning].
type CalloutKind string

const (
	KindInfo     CalloutKind = "info"
	KindInfoPlus CalloutKind = "info+"
	KindWarning  CalloutKind = "warning"
	KindNote     CalloutKind = "note"
	KindTip      CalloutKind = "tip"
	KindCaution  CalloutKind = "caution"
	KindDanger   CalloutKind = "danger"
	KindSuccess  CalloutKind = "success"
	KindFailure  CalloutKind = "failure"
	KindBug      CalloutKind = "bug"
	KindExample  CalloutKind = "example"
	KindQuote    CalloutKind = "quote"
	KindCite     CalloutKind = "cite"
	KindAbstract CalloutKind = "abstract"
	KindSummary  CalloutKind = "summary"
	KindTLDR     CalloutKind = "tldr"
	KindQuestion CalloutKind = "question"
	KindHelp     CalloutKind = "help"
	KindFAQ      CalloutKind = "faq"
	KindError    CalloutKind = "error"
)

// Category is the presentation category of an alert block.
// The callout kinds collapse to four categories.
type Category string

const (
	CategoryInfo    Category = "info"
	CategoryWarning Category = "warning"
	CategorySuccess Category = "success"
	CategoryError   Category = "error"
)

var calloutCategories = map[CalloutKind]Category{
	KindWarning: CategoryWarning,
	KindCaution: CategoryWarning,
	KindDanger:  CategoryWarning,
	KindSuccess: CategorySuccess,
	KindError:   CategoryError,
	KindFailure: CategoryError,
}

// Category returns the presentation category of the callout kind.
// Kinds without an explicit mapping are informational.
func (k CalloutKind) Category() Category {
	if category, ok := calloutCategories[k]; ok {
		return category
	}
	return CategoryInfo
}

// Regex to match callout markers. Only the enumerated kinds are recognized;
// other bracketed patterns are left alone. `info+` must be tried before
// `info` to match the longest keyword.
var regexCallout = regexp.MustCompile(`(?i)\[!(info\+|info|warning|note|tip|caution|danger|success|failure|bug|example|quote|cite|abstract|summary|tldr|question|help|faq|error)\]([^\n]*)`)

var regexParagraphTags = regexp.MustCompile(`</?p>`)
var regexInnerTags = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*[^>]*>`)

var titleCaser = cases.Title(language.English)

// Callout is the parse result of a callout marker found inside a
// paragraph-like or quote-like fragment.
type Callout struct {
	Kind  CalloutKind
	Title string
	Body  string
}

// ExtractCallout searches an HTML fragment for a callout marker.
// Only the first marker is honored. Returns nil when the fragment does not
// contain a callout, in which case the caller falls back to its standard
// rendering.
func ExtractCallout(fragment string) *Callout {
	match := regexCallout.FindStringSubmatchIndex(fragment)
	if match == nil {
		return nil
	}

	kind := CalloutKind(strings.ToLower(fragment[match[2]:match[3]]))

	title := fragment[match[4]:match[5]]
	title = strings.TrimSpace(regexInnerTags.ReplaceAllString(title, ""))
	if title == "" {
		title = titleCaser.String(string(kind))
	}

	// The body is the fragment without the marker line
	var bodyLines []string
	markerFound := false
	for _, line := range strings.Split(fragment, "\n") {
		if !markerFound && regexCallout.MatchString(line) {
			markerFound = true
			continue
		}
		bodyLines = append(bodyLines, line)
	}
	body := strings.Join(bodyLines, "\n")
	body = regexParagraphTags.ReplaceAllString(body, "")
	body = strings.TrimSpace(body)

	return &Callout{
		Kind:  kind,
		Title: title,
		Body:  body,
	}
}

// ToBlock converts the callout to an alert block.
func (c *Callout) ToBlock() Block {
	attrs := fmt.Sprintf(`{"type":%q,"title":%q}`, string(c.Kind.Category()), c.Title)
	return Block{
		Type:  TypeAlert,
		Attrs: attrs,
		Body:  "<p>" + c.Body + "</p>",
	}
}
