// Package analyze parses fetched HTML into a traversable document and
// derives identity fields (name, description, logo-based hints) through
// layered heuristics. When no HTML is available it degrades to URL-only
// "basic mode" derivation.
package analyze

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MinParagraphLength is the minimum length for a paragraph to qualify as
// a description fallback.
const MinParagraphLength = 50

// titleSeparators are the common separators used to split page titles
// into a brand name and a tagline. The plain hyphen requires surrounding
// spaces so hyphenated brand names stay intact.
var titleSeparators = []string{"|", "–", "•", " - ", ":"}

// genericTitleWords are stripped from logo alt texts and title fragments
// because they carry no brand identity.
var genericTitleWords = []string{"Accueil", "Home", "Bienvenue", "Welcome", "Logo", "Officiel"}

// Document wraps a parsed HTML tree together with its base URL so that
// extractors can run selector queries and resolve relative links.
type Document struct {
	doc  *goquery.Document
	base *url.URL
	url  string
	raw  string
}

// Parse builds a Document from raw HTML. The rawURL is used as the base
// for resolving relative hrefs; an unparseable base leaves hrefs as-is.
func Parse(html, rawURL string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(rawURL)
	if err != nil {
		base = nil
	}
	return &Document{doc: doc, base: base, url: rawURL, raw: html}, nil
}

// HTML returns the raw markup the document was parsed from. The contact
// extractor scans it directly for email patterns that live outside
// element text (attributes, obfuscated markup).
func (d *Document) HTML() string {
	return d.raw
}

// Find runs a CSS selector query against the document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// URL returns the document's source URL.
func (d *Document) URL() string {
	return d.url
}

// Title returns the raw <title> text.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// MetaDescription returns the content of the meta description tag.
func (d *Document) MetaDescription() string {
	content, _ := d.doc.Find(`meta[name="description"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

// Text returns the full visible text of the page body, scripts and
// styles removed.
func (d *Document) Text() string {
	body := d.doc.Find("body").Clone()
	body.Find("script, style, noscript").Remove()
	return strings.TrimSpace(body.Text())
}

// Name derives the brand name. Structured data wins over the title; the
// title wins over a logo alt attribute. An empty string means nothing
// usable was found.
func (d *Document) Name() string {
	if name := d.structuredDataName(); name != "" {
		return name
	}
	if name := nameFromTitle(d.Title()); name != "" {
		return name
	}
	return d.logoAltName()
}

// Description returns the best available description: meta description,
// then the first intro/about/description-classed element, then the first
// paragraph longer than MinParagraphLength characters.
func (d *Document) Description() string {
	if meta := d.MetaDescription(); meta != "" {
		return meta
	}
	intro := d.doc.Find(`[class*="intro"], [class*="about"], [class*="description"]`).First()
	if text := strings.TrimSpace(intro.Text()); text != "" {
		return text
	}
	var description string
	d.doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if len(text) > MinParagraphLength {
			description = text
			return false
		}
		return true
	})
	return description
}

// ResolveURL resolves a possibly relative href against the document's
// base URL and returns the absolute URL string. Unresolvable hrefs are
// returned unchanged.
func (d *Document) ResolveURL(href string) string {
	if d.base == nil {
		return href
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return d.base.ResolveReference(ref).String()
}

// structuredDataName scans JSON-LD script blocks for a name field.
// Malformed blocks are skipped individually, never fatal.
func (d *Document) structuredDataName() string {
	var name string
	d.doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true // skip malformed block
		}
		for _, candidate := range []any{data["name"], nestedName(data, "brand"), nestedName(data, "publisher")} {
			if str, ok := candidate.(string); ok && strings.TrimSpace(str) != "" {
				name = strings.TrimSpace(str)
				return false
			}
		}
		return true
	})
	return name
}

// nestedName digs a "name" field out of a nested structured-data object.
func nestedName(data map[string]any, key string) any {
	if nested, ok := data[key].(map[string]any); ok {
		return nested["name"]
	}
	return nil
}

// logoAltName looks for an image near a logo class or id and returns its
// alt text, stripped of generic words.
func (d *Document) logoAltName() string {
	var name string
	d.doc.Find(`img[class*="logo"], img[id*="logo"], [class*="logo"] img, [id*="logo"] img`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		alt, ok := s.Attr("alt")
		if !ok {
			return true
		}
		if cleaned := stripGenericWords(alt); cleaned != "" {
			name = cleaned
			return false
		}
		return true
	})
	return name
}

// nameFromTitle splits the title on common separators and returns the
// first fragment that still holds something once generic words are
// stripped. "Accueil - BrandX" therefore yields "BrandX".
func nameFromTitle(title string) string {
	fragments := []string{title}
	for _, sep := range titleSeparators {
		var next []string
		for _, f := range fragments {
			next = append(next, strings.Split(f, sep)...)
		}
		fragments = next
	}
	for _, f := range fragments {
		if name := stripGenericWords(f); name != "" {
			return name
		}
	}
	return ""
}

// stripGenericWords removes words like "Accueil" or "Home" from a
// candidate name and normalizes whitespace.
func stripGenericWords(s string) string {
	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		generic := false
		for _, g := range genericTitleWords {
			if strings.EqualFold(w, g) {
				generic = true
				break
			}
		}
		if !generic {
			kept = append(kept, w)
		}
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}
