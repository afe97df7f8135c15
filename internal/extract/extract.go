// Package extract turns fetched HTML into structured brand data. Three
// extractors build on the document analyzer: profile (identity, industry,
// social presence, products), contact (emails, phones, address) and news
// (recent articles with a keyword summary). Every extractor annotates its
// result with insights describing extraction confidence and gaps, and the
// pipeline never returns a bare error for a syntactically valid URL.
package extract

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/mathieu/brandscope/internal/analyze"
	"github.com/mathieu/brandscope/internal/classify"
	"github.com/mathieu/brandscope/internal/fetch"
	"github.com/mathieu/brandscope/internal/types"
)

// UnknownSiteName is the display name used when nothing at all could be
// derived from the input.
const UnknownSiteName = "Site inconnu"

// Fetcher obtains HTML for a URL. Satisfied by *fetch.Chain.
type Fetcher interface {
	Fetch(ctx context.Context, url string) *fetch.Result
}

// Pipeline wires the fetch chain, analyzer and classifier into the three
// extraction flows. It holds no per-request state and is safe to invoke
// concurrently across distinct URLs.
type Pipeline struct {
	fetcher    Fetcher
	classifier *classify.Classifier
	logger     *slog.Logger
}

// NewPipeline builds a Pipeline. A nil logger falls back to slog.Default.
func NewPipeline(fetcher Fetcher, classifier *classify.Classifier, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{fetcher: fetcher, classifier: classifier, logger: logger}
}

// Extract runs the extraction flow selected by kind. It never returns an
// error: a malformed URL yields an error-shaped result with a single
// high-priority insight, an unreachable site yields a URL-only basic
// result, and an unexpected extractor panic is recovered into a basic
// result with a distinct failure insight.
func (p *Pipeline) Extract(ctx context.Context, rawURL string, kind types.Kind) (result types.Result) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		p.logger.Warn("malformed extraction URL", "url", rawURL)
		return wrapForKind(kind, errorResult(rawURL))
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("extractor panicked", "url", rawURL, "kind", kind, "panic", r)
			result = wrapForKind(kind, basicResult(rawURL, failedMessage))
		}
	}()

	fetched := p.fetcher.Fetch(ctx, rawURL)
	if fetched.Strategy == fetch.StrategyNone {
		return wrapForKind(kind, basicResult(rawURL, limitedMessage))
	}

	doc, err := analyze.Parse(fetched.HTML, rawURL)
	if err != nil {
		p.logger.Warn("HTML parse failed, falling back to URL-only extraction",
			"url", rawURL, "error", err)
		return wrapForKind(kind, basicResult(rawURL, limitedMessage))
	}

	profile := p.extractProfile(doc)
	switch kind {
	case types.KindContact:
		return p.extractContact(doc, profile)
	case types.KindNews:
		return p.extractNews(doc, profile)
	default:
		return profile
	}
}

const (
	limitedMessage = "Extraction limitée : le site n'a pas pu être chargé, données dérivées de l'URL uniquement"
	failedMessage  = "L'extraction a échoué de manière inattendue, données dérivées de l'URL uniquement"
)

// newBase builds a ProfileResult with non-nil collections so that every
// result serializes with empty arrays rather than nulls.
func newBase(name, website string) *types.ProfileResult {
	return &types.ProfileResult{
		Name:        name,
		Website:     website,
		SocialLinks: []types.SocialLink{},
		Products:    []types.Product{},
		Insights:    []types.Insight{},
		ScrapedAt:   time.Now().UTC(),
	}
}

// basicResult derives identity from the URL alone and flags the result
// with a single high-priority insight.
func basicResult(rawURL, message string) *types.ProfileResult {
	info := analyze.FromURL(rawURL)
	result := newBase(info.Name, rawURL)
	result.Industry = info.Industry
	result.AddInsight("Extraction", types.PriorityHigh, message)
	return result
}

// errorResult is the sole error-shaped result, produced only for a
// malformed input URL.
func errorResult(rawURL string) *types.ProfileResult {
	result := newBase(UnknownSiteName, rawURL)
	result.Industry = classify.DefaultIndustry
	result.Error = "URL invalide"
	result.AddInsight("Erreur", types.PriorityHigh, "URL invalide : aucune extraction possible")
	return result
}

// wrapForKind lifts a base result into the shape the caller asked for,
// with empty kind-specific collections.
func wrapForKind(kind types.Kind, base *types.ProfileResult) types.Result {
	switch kind {
	case types.KindContact:
		return &types.ContactResult{
			ProfileResult: *base,
			AllEmails:     []string{},
			AllPhones:     []string{},
		}
	case types.KindNews:
		return &types.NewsResult{
			ProfileResult: *base,
			NewsItems:     []types.NewsItem{},
			Keywords:      []string{},
		}
	default:
		return base
	}
}
