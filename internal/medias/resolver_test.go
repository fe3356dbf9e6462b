package medias_test

import (
	"testing"

	"github.com/julien-sobczak/the-notepublisher/internal/medias"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURLResolver(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		ref      string // input
		expected string // output
	}{
		{
			name:     "Simple name",
			baseURL:  "https://example.com/uploads",
			ref:      "picture.png",
			expected: "https://example.com/uploads/picture.png",
		},
		{
			name:     "Name requiring slugification",
			baseURL:  "https://example.com/uploads",
			ref:      "My Diagram (v2).svg",
			expected: "https://example.com/uploads/my-diagram-v2.svg",
		},
		{
			name:     "Trailing slash in base URL",
			baseURL:  "https://example.com/uploads/",
			ref:      "picture.png",
			expected: "https://example.com/uploads/picture.png",
		},
		{
			name:     "Path inside the vault is flattened",
			baseURL:  "https://example.com/uploads",
			ref:      "medias/picture.png",
			expected: "https://example.com/uploads/picture.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := medias.BaseURLResolver{BaseURL: tt.baseURL}
			actual, err := resolver.Resolve(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestBaseURLResolverWithoutBaseURL(t *testing.T) {
	resolver := medias.BaseURLResolver{}
	_, err := resolver.Resolve("picture.png")
	require.Error(t, err)
}
