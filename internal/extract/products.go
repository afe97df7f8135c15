package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mathieu/brandscope/internal/analyze"
	"github.com/mathieu/brandscope/internal/types"
)

// MaxProducts caps the product listing.
const MaxProducts = 10

// MinProductTextLength filters out decorative elements that match the
// product class patterns but carry no real content.
const MinProductTextLength = 20

// productSelectors are the generic class patterns product grids use.
const productSelectors = `[class*="product"], [class*="item"], [class*="card"]`

// extractProducts scans elements matching generic product/item/card
// class patterns. The name is required; elements without one (or with
// too little text) are skipped. Capped at MaxProducts, deduplicated by
// name.
func extractProducts(doc *analyze.Document) []types.Product {
	products := []types.Product{}
	seen := make(map[string]bool)

	doc.Find(productSelectors).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(strings.TrimSpace(s.Text())) < MinProductTextLength {
			return true
		}

		name := firstText(s, `h1, h2, h3, h4, [class*="name"], [class*="title"]`)
		if name == "" || seen[name] {
			return true
		}

		product := types.Product{
			Name:        name,
			Price:       firstText(s, `[class*="price"]`),
			Description: firstText(s, "p"),
		}
		if src, ok := s.Find("img").First().Attr("src"); ok && src != "" {
			product.ImageURL = doc.ResolveURL(src)
		}

		seen[name] = true
		products = append(products, product)
		return len(products) < MaxProducts
	})

	return products
}

// firstText returns the trimmed text of the first element matching the
// selector inside s.
func firstText(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}
