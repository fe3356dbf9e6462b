package medias

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/julien-sobczak/the-notepublisher/pkg/text"
)

// Resolver maps an embedded reference name to a public URL.
// Implementations typically upload the media or look it up in a remote
// library; the pipeline only needs the resulting URL.
type Resolver interface {
	Resolve(ref string) (string, error)
}

// BaseURLResolver maps references under a static uploads base URL.
// The file name is slugified to produce a safe URL.
// Ex: "My Picture.png" => "https://example.com/uploads/my-picture.png"
type BaseURLResolver struct {
	BaseURL string
}

func (r BaseURLResolver) Resolve(ref string) (string, error) {
	if r.BaseURL == "" {
		return "", fmt.Errorf("no base URL configured to resolve %q", ref)
	}
	base := filepath.Base(ref)
	ext := filepath.Ext(base)
	name := slug.Make(text.TrimExtension(base))
	return strings.TrimSuffix(r.BaseURL, "/") + "/" + name + ext, nil
}
