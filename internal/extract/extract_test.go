package extract

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathieu/brandscope/internal/classify"
	"github.com/mathieu/brandscope/internal/fetch"
	"github.com/mathieu/brandscope/internal/types"
)

// stubFetcher serves fixed HTML, or the exhaustion sentinel when empty.
type stubFetcher struct {
	html string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) *fetch.Result {
	if s.html == "" {
		return &fetch.Result{URL: url, Strategy: fetch.StrategyNone}
	}
	return &fetch.Result{URL: url, HTML: s.html, Strategy: "primary"}
}

// panicFetcher simulates an unexpected extractor failure.
type panicFetcher struct{}

func (p *panicFetcher) Fetch(_ context.Context, _ string) *fetch.Result {
	panic("unexpected")
}

func newTestPipeline(html string) *Pipeline {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPipeline(&stubFetcher{html: html}, classify.New(classify.DefaultIndustries()), logger)
}

func TestExtract_MalformedURL(t *testing.T) {
	p := newTestPipeline("<html></html>")

	result := p.Extract(context.Background(), "not a url", types.KindProfile)
	profile := result.Profile()

	assert.Equal(t, UnknownSiteName, profile.Name)
	assert.NotEmpty(t, profile.Error)
	require.Len(t, profile.Insights, 1)
	assert.Equal(t, types.PriorityHigh, profile.Insights[0].Priority)
}

func TestExtract_MalformedURL_KindShapePreserved(t *testing.T) {
	p := newTestPipeline("<html></html>")

	result := p.Extract(context.Background(), "not a url", types.KindContact)
	contact, ok := result.(*types.ContactResult)
	require.True(t, ok)
	assert.NotNil(t, contact.AllEmails)
	assert.Empty(t, contact.AllEmails)
}

func TestExtract_BasicMode(t *testing.T) {
	p := newTestPipeline("") // fetch chain exhausted

	result := p.Extract(context.Background(), "https://my-cool-brand.example.com", types.KindProfile)
	profile := result.Profile()

	assert.Equal(t, "My Cool Brand", profile.Name)
	assert.Equal(t, "Autre", profile.Industry)
	assert.Empty(t, profile.SocialLinks)
	require.Len(t, profile.Insights, 1)
	assert.Equal(t, types.PriorityHigh, profile.Insights[0].Priority)
	assert.Contains(t, profile.Insights[0].Message, "limitée")
}

func TestExtract_PanicRecoveredIntoBasicResult(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewPipeline(&panicFetcher{}, classify.New(classify.DefaultIndustries()), logger)

	result := p.Extract(context.Background(), "https://brandx.com", types.KindNews)
	news, ok := result.(*types.NewsResult)
	require.True(t, ok)

	require.Len(t, news.Insights, 1)
	assert.Equal(t, types.PriorityHigh, news.Insights[0].Priority)
	assert.Contains(t, news.Insights[0].Message, "échoué")
	assert.Empty(t, news.NewsItems)
}

func TestExtract_InsightsNeverNil(t *testing.T) {
	p := newTestPipeline(`<html><head><title>BrandX</title></head><body></body></html>`)

	for _, kind := range []types.Kind{types.KindProfile, types.KindContact, types.KindNews} {
		result := p.Extract(context.Background(), "https://brandx.com", kind)
		assert.NotNil(t, result.Profile().Insights, "kind %s", kind)
	}
}

func TestExtract_WeakNameInsight(t *testing.T) {
	// A title with no separator leaves the name equal to the raw title.
	p := newTestPipeline(`<html><head><title>BrandX</title></head><body></body></html>`)

	result := p.Extract(context.Background(), "https://brandx.com", types.KindProfile)
	profile := result.Profile()

	var found bool
	for _, insight := range profile.Insights {
		if insight.Type == "Nom de marque" {
			found = true
			assert.Equal(t, types.PriorityMedium, insight.Priority)
		}
	}
	assert.True(t, found, "expected a weak brand name insight")
}

func TestExtract_ProfileKind(t *testing.T) {
	html := `
	<html><head>
		<title>BrandX | Boutique en ligne</title>
		<meta name="description" content="Boutique de vêtements et accessoires, achat en ligne.">
	</head><body>
		<a href="https://instagram.com/brandx">Instagram</a>
		<p>Livraison offerte dès 50 euros d'achat, panier et commande sécurisés pour votre boutique préférée.</p>
	</body></html>`
	p := newTestPipeline(html)

	result := p.Extract(context.Background(), "https://brandx.com", types.KindProfile)
	profile, ok := result.(*types.ProfileResult)
	require.True(t, ok)

	assert.Equal(t, "BrandX", profile.Name)
	assert.Equal(t, "Ecommerce", profile.Industry)
	assert.Equal(t, "https://brandx.com", profile.Website)
	require.Len(t, profile.SocialLinks, 1)
	assert.Equal(t, "instagram", profile.SocialLinks[0].Platform)
}
