package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromURL_HyphenSplitCapitalized(t *testing.T) {
	info := FromURL("https://my-cool-brand.example.com")
	assert.Equal(t, "My Cool Brand", info.Name)
}

func TestFromURL_StripsWWW(t *testing.T) {
	info := FromURL("https://www.brandx.com")
	assert.Equal(t, "Brandx", info.Name)
}

func TestFromURL_IndustryFromURLTable(t *testing.T) {
	info := FromURL("https://my-shop.example.com")
	assert.Equal(t, "Ecommerce", info.Industry)
}

func TestFromURL_UnknownIndustryDefaults(t *testing.T) {
	info := FromURL("https://my-cool-brand.example.com")
	assert.Equal(t, "Autre", info.Industry)
}

func TestFromURL_Unparseable(t *testing.T) {
	info := FromURL("::::")
	assert.Equal(t, "Site inconnu", info.Name)
}
