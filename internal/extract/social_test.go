package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathieu/brandscope/internal/analyze"
)

func parseDoc(t *testing.T, html, url string) *analyze.Document {
	t.Helper()
	doc, err := analyze.Parse(html, url)
	require.NoError(t, err)
	return doc
}

func TestExtractSocialLinks_PlatformDomains(t *testing.T) {
	html := `
	<html><body>
		<a href="https://facebook.com/brandx">FB</a>
		<a href="https://fb.com/brandx">FB court</a>
		<a href="https://www.instagram.com/brandx">IG</a>
		<a href="https://x.com/brandx">X</a>
		<a href="https://youtu.be/abc123">Video</a>
		<a href="https://tiktok.com/@brandx">TT</a>
		<a href="https://example.com/autre">Autre</a>
	</body></html>`
	doc := parseDoc(t, html, "https://brandx.com")

	links := extractSocialLinks(doc)
	require.Len(t, links, 6)

	platforms := make(map[string]int)
	for _, l := range links {
		platforms[l.Platform]++
	}
	assert.Equal(t, 2, platforms["facebook"])
	assert.Equal(t, 1, platforms["instagram"])
	assert.Equal(t, 1, platforms["twitter"])
	assert.Equal(t, 1, platforms["youtube"])
	assert.Equal(t, 1, platforms["tiktok"])
}

func TestExtractSocialLinks_DeduplicatesByResolvedURL(t *testing.T) {
	html := `
	<html><body>
		<a href="https://instagram.com/brandx">IG</a>
		<a href="https://instagram.com/brandx">IG encore</a>
	</body></html>`
	doc := parseDoc(t, html, "https://brandx.com")

	links := extractSocialLinks(doc)
	assert.Len(t, links, 1)
}

func TestExtractSocialLinks_DistinctQueryStringsAreDistinct(t *testing.T) {
	// No query normalization is applied: the same profile with a
	// different query string counts as a different URL.
	html := `
	<html><body>
		<a href="https://instagram.com/brandx">IG</a>
		<a href="https://instagram.com/brandx?hl=fr">IG fr</a>
	</body></html>`
	doc := parseDoc(t, html, "https://brandx.com")

	links := extractSocialLinks(doc)
	assert.Len(t, links, 2)
}

func TestExtractSocialLinks_ResolvesRelativeHrefs(t *testing.T) {
	html := `<html><body><a class="social-icon instagram" href="/go/instagram">IG</a></body></html>`
	doc := parseDoc(t, html, "https://brandx.com")

	links := extractSocialLinks(doc)
	require.Len(t, links, 1)
	assert.Equal(t, "instagram", links[0].Platform)
	assert.Equal(t, "https://brandx.com/go/instagram", links[0].URL)
}

func TestExtractSocialLinks_GenericSocialClassMarker(t *testing.T) {
	html := `<html><body><a class="social-link" href="https://unknown.example.com/profil">Suivez-nous</a></body></html>`
	doc := parseDoc(t, html, "https://brandx.com")

	links := extractSocialLinks(doc)
	require.Len(t, links, 1)
	assert.Equal(t, "social", links[0].Platform)
}

func TestExtractSocialLinks_HostSuffixNotSubstring(t *testing.T) {
	// box.com must not match the x.com table entry.
	html := `<html><body><a href="https://box.com/files">Fichiers</a></body></html>`
	doc := parseDoc(t, html, "https://brandx.com")

	assert.Empty(t, extractSocialLinks(doc))
}
