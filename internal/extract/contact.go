package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mathieu/brandscope/internal/analyze"
	"github.com/mathieu/brandscope/internal/types"
)

// relevanceTokens mark business-relevant email local parts. When any
// found email matches, only matching emails are kept (ranked by first
// occurrence); otherwise the full set passes through unfiltered.
var relevanceTokens = []string{
	"marketing", "comm", "pr", "press", "media",
	"contact", "info", "collab", "partner", "influenc",
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// phonePattern matches loosely grouped phone numbers with an optional
// country code. Candidates are post-filtered on digit count.
var phonePattern = regexp.MustCompile(`\+?\(?\d{1,4}\)?(?:[\s.-]?\d{1,4}){3,6}`)

// contactSectionSelector locates the page regions most likely to hold
// contact details.
const contactSectionSelector = `[class*="contact"], [id*="contact"], footer`

// extractContact runs on top of a profile result and adds contact
// channels: relevance-ranked emails, phones and a postal address.
func (p *Pipeline) extractContact(doc *analyze.Document, profile *types.ProfileResult) *types.ContactResult {
	result := &types.ContactResult{
		ProfileResult: *profile,
		AllEmails:     findEmails(doc),
		AllPhones:     findPhones(doc.Text()),
		Address:       findAddress(doc),
	}
	if len(result.AllEmails) > 0 {
		result.ContactEmail = result.AllEmails[0]
	}
	if len(result.AllPhones) > 0 {
		result.ContactPhone = result.AllPhones[0]
	}

	switch n := len(result.AllEmails); {
	case n == 0:
		result.AddInsight("Emails", types.PriorityMedium,
			"Aucune adresse email détectée sur le site")
	case n == 1:
		result.AddInsight("Emails", types.PriorityInfo,
			"1 adresse email détectée")
	default:
		result.AddInsight("Emails", types.PriorityInfo,
			fmt.Sprintf("%d adresses email détectées", n))
		alternates := result.AllEmails[1:]
		if len(alternates) > 2 {
			alternates = alternates[:2]
		}
		result.AddInsight("Emails", types.PriorityInfo,
			fmt.Sprintf("Email principal : %s (alternatives : %s)",
				result.ContactEmail, strings.Join(alternates, ", ")))
	}

	return result
}

// findEmails unions a raw-HTML regex scan, mailto hrefs and a scan of
// contact-section text, deduplicates preserving first occurrence, then
// applies the relevance filter.
func findEmails(doc *analyze.Document) []string {
	emails := []string{}
	seen := make(map[string]bool)
	add := func(email string) {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" || seen[email] {
			return
		}
		seen[email] = true
		emails = append(emails, email)
	}

	for _, m := range emailPattern.FindAllString(doc.HTML(), -1) {
		add(m)
	}

	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		target := strings.TrimPrefix(href, "mailto:")
		target, _, _ = strings.Cut(target, "?")
		if emailPattern.MatchString(target) {
			add(target)
		}
	})

	doc.Find(contactSectionSelector).Each(func(_ int, s *goquery.Selection) {
		for _, m := range emailPattern.FindAllString(s.Text(), -1) {
			add(m)
		}
	})

	return rankByRelevance(emails)
}

// rankByRelevance keeps only emails whose local part contains a
// relevance token, unless none match, in which case the full set is
// returned. Order within each outcome follows first occurrence.
func rankByRelevance(emails []string) []string {
	relevant := []string{}
	for _, email := range emails {
		local, _, _ := strings.Cut(email, "@")
		for _, token := range relevanceTokens {
			if strings.Contains(local, token) {
				relevant = append(relevant, email)
				break
			}
		}
	}
	if len(relevant) > 0 {
		return relevant
	}
	return emails
}

// findPhones extracts phone numbers from page text. Regex candidates
// are filtered on digit count to weed out prices and dates.
func findPhones(text string) []string {
	phones := []string{}
	seen := make(map[string]bool)
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits < 9 || digits > 15 {
			continue
		}
		candidate = strings.TrimSpace(candidate)
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		phones = append(phones, candidate)
	}
	return phones
}

// findAddress returns the first element carrying address microdata or an
// address class pattern.
func findAddress(doc *analyze.Document) string {
	var address string
	doc.Find(`[itemprop="address"], address, [class*="address"], [class*="adresse"]`).
		EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if text := strings.TrimSpace(s.Text()); text != "" {
				address = text
				return false
			}
			return true
		})
	return address
}
