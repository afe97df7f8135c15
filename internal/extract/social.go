package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mathieu/brandscope/internal/analyze"
	"github.com/mathieu/brandscope/internal/types"
)

// platformTable maps social platforms to the host names they are served
// from. Order fixes the platform label when several could match.
var platformTable = []struct {
	Platform string
	Hosts    []string
}{
	{"facebook", []string{"facebook.com", "fb.com"}},
	{"instagram", []string{"instagram.com"}},
	{"twitter", []string{"twitter.com", "x.com"}},
	{"linkedin", []string{"linkedin.com"}},
	{"youtube", []string{"youtube.com", "youtu.be"}},
	{"pinterest", []string{"pinterest.com"}},
	{"tiktok", []string{"tiktok.com"}},
}

// extractSocialLinks scans all anchors for social platform links. Hrefs
// are resolved against the base URL before matching and deduplication,
// so the same profile reached through a relative and an absolute link
// appears once. Distinct query strings are distinct URLs: no query
// normalization is applied.
func extractSocialLinks(doc *analyze.Document) []types.SocialLink {
	links := []types.SocialLink{}
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" {
			return
		}
		resolved := doc.ResolveURL(href)

		platform := platformFromURL(resolved)
		if platform == "" {
			platform = platformFromAnchor(s)
		}
		if platform == "" {
			return
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, types.SocialLink{Platform: platform, URL: resolved})
	})

	return links
}

// platformFromURL matches the link host against the platform table.
func platformFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	for _, entry := range platformTable {
		for _, h := range entry.Hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return entry.Platform
			}
		}
	}
	return ""
}

// platformFromAnchor matches the anchor's text and class attribute
// against platform names, or the generic "social" class marker.
func platformFromAnchor(s *goquery.Selection) string {
	text := strings.ToLower(strings.TrimSpace(s.Text()))
	class, _ := s.Attr("class")
	class = strings.ToLower(class)

	for _, entry := range platformTable {
		if strings.Contains(text, entry.Platform) || strings.Contains(class, entry.Platform) {
			return entry.Platform
		}
	}
	if strings.Contains(class, "social") {
		return "social"
	}
	return ""
}
