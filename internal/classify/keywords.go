package classify

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// stopwords is the fixed list of French function words excluded from
// keyword frequency summaries.
var stopwords = map[string]bool{
	"dans": true, "avec": true, "pour": true, "vous": true, "nous": true,
	"votre": true, "notre": true, "plus": true, "tout": true, "tous": true,
	"toute": true, "toutes": true, "être": true, "avoir": true, "sont": true,
	"cette": true, "leur": true, "leurs": true, "mais": true, "comme": true,
	"elle": true, "elles": true, "fait": true, "aussi": true, "bien": true,
	"très": true, "sans": true, "sous": true, "entre": true, "ainsi": true,
	"donc": true, "alors": true, "après": true, "avant": true, "chez": true,
	"depuis": true, "encore": true, "même": true, "peut": true, "quand": true,
	"quel": true, "quelle": true, "selon": true, "sera": true, "vers": true,
	"dont": true, "celui": true, "celle": true, "ceux": true, "autre": true,
	"autres": true, "était": true, "été": true, "faire": true,
}

// nonWord matches any run of characters that is neither a Unicode letter
// nor digit nor whitespace. Accented Latin characters are preserved.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// TopKeywords tokenizes text and returns the top-n tokens by frequency,
// most frequent first. Tokens of three characters or fewer and French
// stopwords are dropped. Equal frequencies are ordered by first
// occurrence in the text, which keeps the ranking deterministic.
func TopKeywords(text string, n int) []string {
	if n <= 0 {
		return nil
	}

	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, token := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(token) <= 3 || stopwords[token] {
			continue
		}
		if _, seen := counts[token]; !seen {
			firstSeen[token] = order
			order++
		}
		counts[token]++
	}

	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return firstSeen[tokens[i]] < firstSeen[tokens[j]]
	})

	if len(tokens) > n {
		tokens = tokens[:n]
	}
	return tokens
}
