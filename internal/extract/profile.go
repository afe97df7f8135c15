package extract

import (
	"fmt"

	"github.com/mathieu/brandscope/internal/analyze"
	"github.com/mathieu/brandscope/internal/types"
)

// extractProfile composes the analyzer outputs with the classifier and
// the social/product sub-extractors, then annotates the result.
func (p *Pipeline) extractProfile(doc *analyze.Document) *types.ProfileResult {
	rawTitle := doc.Title()

	name := doc.Name()
	if name == "" {
		name = analyze.FromURL(doc.URL()).Name
	}

	result := newBase(name, doc.URL())
	result.Description = doc.Description()
	result.Industry = p.classifier.Classify(doc.Text(), doc.URL(), doc.MetaDescription())
	result.SocialLinks = extractSocialLinks(doc)
	result.Products = extractProducts(doc)

	// A name identical to the raw title means the separator split found
	// nothing to strip: weak extraction.
	if rawTitle != "" && name == rawTitle {
		result.AddInsight("Nom de marque", types.PriorityMedium,
			"Le nom de la marque n'a pas pu être isolé du titre de la page")
	}

	if len(result.SocialLinks) == 0 {
		result.AddInsight("Réseaux sociaux", types.PriorityMedium,
			"Aucun réseau social détecté sur le site")
	} else {
		result.AddInsight("Réseaux sociaux", types.PriorityInfo,
			fmt.Sprintf("%d réseau(x) social(aux) détecté(s)", len(result.SocialLinks)))
	}

	if len(result.Products) > 0 {
		result.AddInsight("Offre", types.PriorityInfo,
			fmt.Sprintf("%d produit(s) détecté(s) sur le site", len(result.Products)))
	}

	return result
}
