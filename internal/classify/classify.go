// Package classify assigns an industry label to page content by scoring
// fixed keyword tables against the text, URL and meta description.
package classify

import (
	"regexp"
	"strings"
)

// DefaultIndustry is returned when no keyword scores at all.
const DefaultIndustry = "Autre"

// Bonus points applied when a keyword appears outside the page body.
const (
	urlBonus  = 5
	metaBonus = 3
)

// Industry couples a label with its detection keywords. Table order is
// significant: when two industries reach the same score, the one listed
// first keeps the label.
type Industry struct {
	Label    string
	Keywords []string
}

// DefaultIndustries returns the built-in industry keyword table.
func DefaultIndustries() []Industry {
	return []Industry{
		{Label: "Technologie", Keywords: []string{"tech", "software", "logiciel", "digital", "application", "saas", "cloud", "data", "informatique", "startup"}},
		{Label: "Ecommerce", Keywords: []string{"boutique", "shop", "achat", "panier", "commande", "livraison", "vente", "store", "ecommerce", "promo"}},
		{Label: "Beauté", Keywords: []string{"beauté", "beauty", "cosmétique", "maquillage", "skincare", "soin", "parfum", "makeup"}},
		{Label: "Mode", Keywords: []string{"mode", "fashion", "vêtement", "collection", "couture", "accessoire", "lookbook", "tendance"}},
		{Label: "Alimentation", Keywords: []string{"restaurant", "recette", "cuisine", "gourmand", "alimentation", "traiteur", "food", "épicerie"}},
		{Label: "Santé", Keywords: []string{"santé", "health", "médical", "bien-être", "wellness", "fitness", "nutrition", "pharmacie"}},
		{Label: "Finance", Keywords: []string{"finance", "banque", "assurance", "investissement", "crédit", "paiement", "fintech", "épargne"}},
		{Label: "Immobilier", Keywords: []string{"immobilier", "estate", "appartement", "maison", "location", "agence", "propriété"}},
		{Label: "Voyage", Keywords: []string{"voyage", "travel", "hôtel", "vacances", "tourisme", "destination", "séjour", "croisière"}},
	}
}

// Classifier scores page content against an industry keyword table.
// It is a pure function of its inputs and the fixed table, so identical
// calls always return the same label.
type Classifier struct {
	industries []Industry
	patterns   map[string]*regexp.Regexp
}

// New creates a Classifier over the given table. Pass the result of
// DefaultIndustries for the built-in behavior.
func New(industries []Industry) *Classifier {
	patterns := make(map[string]*regexp.Regexp)
	for _, ind := range industries {
		for _, kw := range ind.Keywords {
			if _, ok := patterns[kw]; !ok {
				patterns[kw] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw))
			}
		}
	}
	return &Classifier{industries: industries, patterns: patterns}
}

// Classify returns the industry whose keywords score highest against the
// page text, URL and meta description. Each body occurrence counts one
// point, a keyword in the URL adds 5 and in the meta description adds 3.
// Ties keep the first industry in table order that reached the maximum;
// a total score of zero yields DefaultIndustry.
func (c *Classifier) Classify(text, rawURL, metaDescription string) string {
	lowerURL := strings.ToLower(rawURL)
	lowerMeta := strings.ToLower(metaDescription)

	best := 0
	label := DefaultIndustry
	for _, ind := range c.industries {
		score := 0
		for _, kw := range ind.Keywords {
			score += len(c.patterns[kw].FindAllStringIndex(text, -1))
			if strings.Contains(lowerURL, kw) {
				score += urlBonus
			}
			if strings.Contains(lowerMeta, kw) {
				score += metaBonus
			}
		}
		// Strict comparison: the first industry to reach the maximum
		// keeps the label.
		if score > best {
			best = score
			label = ind.Label
		}
	}
	return label
}

// urlIndustryTable maps URL substrings to industries for URL-only
// classification when no document could be retrieved.
var urlIndustryTable = []struct {
	token string
	label string
}{
	{"shop", "Ecommerce"},
	{"store", "Ecommerce"},
	{"boutique", "Ecommerce"},
	{"tech", "Technologie"},
	{"digital", "Technologie"},
	{"beauty", "Beauté"},
	{"cosmetic", "Beauté"},
	{"fashion", "Mode"},
	{"mode", "Mode"},
	{"food", "Alimentation"},
	{"resto", "Alimentation"},
	{"health", "Santé"},
	{"sante", "Santé"},
	{"finance", "Finance"},
	{"bank", "Finance"},
	{"immo", "Immobilier"},
	{"travel", "Voyage"},
	{"voyage", "Voyage"},
}

// IndustryFromURL guesses an industry from the URL alone. Used in basic
// mode, when the fetch chain was exhausted and no HTML is available.
func IndustryFromURL(rawURL string) string {
	lower := strings.ToLower(rawURL)
	for _, entry := range urlIndustryTable {
		if strings.Contains(lower, entry.token) {
			return entry.label
		}
	}
	return DefaultIndustry
}
