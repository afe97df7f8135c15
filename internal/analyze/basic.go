package analyze

import (
	"net/url"
	"strings"

	"github.com/mathieu/brandscope/internal/classify"
)

// BasicInfo holds the identity fields derivable from a URL alone.
type BasicInfo struct {
	Name     string
	Industry string
}

// FromURL derives a display name and industry purely from the URL, for
// use when the fetch chain was exhausted and no document exists. The
// name comes from the first domain label, hyphen-split and capitalized.
func FromURL(rawURL string) BasicInfo {
	return BasicInfo{
		Name:     nameFromHost(rawURL),
		Industry: classify.IndustryFromURL(rawURL),
	}
}

// nameFromHost turns "my-cool-brand.example.com" into "My Cool Brand".
func nameFromHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "Site inconnu"
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return "Site inconnu"
	}
	parts := strings.Split(label, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
