package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_EcommerceKeywords(t *testing.T) {
	c := New(DefaultIndustries())
	text := strings.Repeat("boutique achat panier ", 3)

	industry := c.Classify(text, "https://example.com", "")
	assert.Equal(t, "Ecommerce", industry)
}

func TestClassify_NoKeywords_ReturnsDefault(t *testing.T) {
	c := New(DefaultIndustries())

	industry := c.Classify("rien d'identifiable ici", "https://example.com", "")
	assert.Equal(t, DefaultIndustry, industry)
}

func TestClassify_URLBonus(t *testing.T) {
	c := New(DefaultIndustries())

	// One body match each, but the URL mentions voyage.
	industry := c.Classify("voyage boutique", "https://voyage-express.example.com", "")
	assert.Equal(t, "Voyage", industry)
}

func TestClassify_MetaBonus(t *testing.T) {
	c := New(DefaultIndustries())

	industry := c.Classify("boutique fitness", "https://example.com", "nutrition et fitness pour tous")
	assert.Equal(t, "Santé", industry)
}

func TestClassify_TieKeepsTableOrder(t *testing.T) {
	// Technologie precedes Ecommerce in the table; with equal scores the
	// first industry to reach the maximum keeps the label.
	c := New(DefaultIndustries())

	industry := c.Classify("software boutique", "https://example.com", "")
	assert.Equal(t, "Technologie", industry)
}

func TestClassify_Deterministic(t *testing.T) {
	c := New(DefaultIndustries())
	text := "maquillage skincare parfum boutique"

	first := c.Classify(text, "https://example.com", "soin du visage")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(text, "https://example.com", "soin du visage"))
	}
}

func TestIndustryFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"shop token", "https://my-shop.example.com", "Ecommerce"},
		{"tech token", "https://cooltech.io", "Technologie"},
		{"beauty token", "https://beautylab.fr", "Beauté"},
		{"no token", "https://my-cool-brand.example.com", DefaultIndustry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndustryFromURL(tt.url))
		})
	}
}
