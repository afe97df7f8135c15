package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mathieu/brandscope/internal/analyze"
	"github.com/mathieu/brandscope/internal/classify"
	"github.com/mathieu/brandscope/internal/types"
)

// MaxNewsItems caps the news listing.
const MaxNewsItems = 5

// MaxExcerptLength caps each item's excerpt, in runes.
const MaxExcerptLength = 500

// MaxKeywords caps the frequency-ranked keyword summary.
const MaxKeywords = 10

// newsSectionSelector finds candidate news regions by class.
const newsSectionSelector = `[class*="news"], [class*="blog"], [class*="actualit"], [class*="article"], [class*="press"]`

// newsItemSelector finds repeated child entries inside a news region.
const newsItemSelector = `article, li, [class*="item"], [class*="card"], [class*="post"]`

// standaloneItemSelector is the last resort when no news section exists.
const standaloneItemSelector = `article, .news-item, .blog-post, .post`

// newsTextTokens identify a news region by its text when no class
// pattern matches.
var newsTextTokens = []string{"actualité", "actualites", "news", "blog", "communiqué de presse"}

// extractNews runs on top of a profile result and collects recent news
// items through a fallback ladder: structured section items, then whole
// sections as single items, then standalone article elements. An RSS
// feed link, when present and nothing else matched, is only logged.
func (p *Pipeline) extractNews(doc *analyze.Document, profile *types.ProfileResult) *types.NewsResult {
	result := &types.NewsResult{
		ProfileResult: *profile,
		NewsItems:     []types.NewsItem{},
		Keywords:      []string{},
	}

	result.NewsItems = newsFromSections(doc)
	if len(result.NewsItems) == 0 {
		result.NewsItems = newsFromStandaloneItems(doc)
	}
	if len(result.NewsItems) == 0 {
		p.logRSSFeed(doc)
	}

	var corpus strings.Builder
	for _, item := range result.NewsItems {
		corpus.WriteString(item.NewsTitle)
		corpus.WriteString(" ")
		corpus.WriteString(item.NewsContent)
		corpus.WriteString(" ")
	}
	if keywords := classify.TopKeywords(corpus.String(), MaxKeywords); keywords != nil {
		result.Keywords = keywords
	}

	if len(result.NewsItems) == 0 {
		result.AddInsight("Actualités", types.PriorityMedium,
			"Aucune actualité détectée sur le site")
	} else {
		result.AddInsight("Actualités", types.PriorityInfo,
			fmt.Sprintf("%d actualité(s) détectée(s)", len(result.NewsItems)))
	}
	if len(result.Keywords) > 0 {
		top := result.Keywords
		if len(top) > 5 {
			top = top[:5]
		}
		result.AddInsight("Mots-clés", types.PriorityInfo,
			fmt.Sprintf("Mots-clés principaux : %s", strings.Join(top, ", ")))
	}

	return result
}

// newsFromSections walks news-section candidates looking for repeated
// child items. Only when no section at all yields children does it
// degrade sections to single items (heading plus full text), so a
// decorative childless block next to a real listing adds no noise.
func newsFromSections(doc *analyze.Document) []types.NewsItem {
	items := []types.NewsItem{}
	seen := make(map[string]bool)

	sections := collectNewsSections(doc)
	for _, section := range sections {
		items = append(items, itemsFromChildren(doc, section, seen)...)
		if len(items) >= MaxNewsItems {
			return items[:MaxNewsItems]
		}
	}
	if len(items) > 0 {
		return items
	}

	for _, section := range sections {
		if item, ok := sectionAsItem(section, seen); ok {
			items = append(items, item)
			if len(items) == MaxNewsItems {
				break
			}
		}
	}
	return items
}

// collectNewsSections gathers candidate regions by class pattern, then
// by text token for pages without helpful class names.
func collectNewsSections(doc *analyze.Document) []*goquery.Selection {
	var sections []*goquery.Selection
	doc.Find(newsSectionSelector).Each(func(_ int, s *goquery.Selection) {
		sections = append(sections, s)
	})
	if len(sections) > 0 {
		return sections
	}

	doc.Find("section, div").Each(func(_ int, s *goquery.Selection) {
		heading := strings.ToLower(s.Find("h1, h2, h3").First().Text())
		for _, token := range newsTextTokens {
			if strings.Contains(heading, token) {
				sections = append(sections, s)
				return
			}
		}
	})
	return sections
}

// itemsFromChildren extracts one news item per repeated child element.
func itemsFromChildren(doc *analyze.Document, section *goquery.Selection, seen map[string]bool) []types.NewsItem {
	items := []types.NewsItem{}
	section.Find(newsItemSelector).EachWithBreak(func(_ int, child *goquery.Selection) bool {
		title := firstText(child, `h1, h2, h3, h4, [class*="title"]`)
		if title == "" || seen[title] {
			return true
		}

		item := types.NewsItem{
			NewsTitle:   title,
			NewsDate:    extractDate(child),
			NewsContent: truncate(firstText(child, `p, [class*="excerpt"], [class*="content"]`), MaxExcerptLength),
		}
		if href, ok := child.Find("a[href]").First().Attr("href"); ok && href != "" {
			item.NewsURL = doc.ResolveURL(href)
		}

		seen[title] = true
		items = append(items, item)
		return len(items) < MaxNewsItems
	})
	return items
}

// sectionAsItem degrades a childless news section into a single item.
func sectionAsItem(section *goquery.Selection, seen map[string]bool) (types.NewsItem, bool) {
	title := firstText(section, "h1, h2, h3, h4")
	if title == "" || seen[title] {
		return types.NewsItem{}, false
	}
	seen[title] = true
	return types.NewsItem{
		NewsTitle:   title,
		NewsDate:    extractDate(section),
		NewsContent: truncate(strings.TrimSpace(section.Text()), MaxExcerptLength),
	}, true
}

// newsFromStandaloneItems handles pages with article elements but no
// enclosing news section.
func newsFromStandaloneItems(doc *analyze.Document) []types.NewsItem {
	items := []types.NewsItem{}
	seen := make(map[string]bool)
	doc.Find(standaloneItemSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := firstText(s, `h1, h2, h3, h4, [class*="title"]`)
		if title == "" || seen[title] {
			return true
		}
		item := types.NewsItem{
			NewsTitle:   title,
			NewsDate:    extractDate(s),
			NewsContent: truncate(firstText(s, `p, [class*="excerpt"], [class*="content"]`), MaxExcerptLength),
		}
		if href, ok := s.Find("a[href]").First().Attr("href"); ok && href != "" {
			item.NewsURL = doc.ResolveURL(href)
		}
		seen[title] = true
		items = append(items, item)
		return len(items) < MaxNewsItems
	})
	return items
}

// logRSSFeed records a detected RSS feed. Feeds are detected but never
// parsed.
func (p *Pipeline) logRSSFeed(doc *analyze.Document) {
	href, ok := doc.Find(`link[type="application/rss+xml"]`).First().Attr("href")
	if !ok || href == "" {
		return
	}
	p.logger.Info("RSS feed detected but not parsed", "feed", doc.ResolveURL(href), "url", doc.URL())
}

// dateLayouts are tried in order against datetime attributes and date
// text.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
	"2 January 2006",
}

// extractDate finds a date inside an item, preferring the machine
// readable datetime attribute, and renders it as a French-style date.
func extractDate(s *goquery.Selection) string {
	node := s.Find(`time, [class*="date"], [datetime]`).First()
	if attr, ok := node.Attr("datetime"); ok && attr != "" {
		return formatDate(attr)
	}
	if text := strings.TrimSpace(node.Text()); text != "" {
		return formatDate(text)
	}
	return ""
}

// formatDate parses raw into a dd/mm/yyyy string, falling back to the
// raw text when no layout matches.
func formatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}

// truncate caps s at n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
