// Package schemas embeds the JSON Schemas describing the extraction
// result and job record payloads.
package schemas

import (
	_ "embed"

	"github.com/mathieu/brandscope/internal/types"
)

//go:embed profile_result.schema.json
var ProfileResult []byte

//go:embed contact_result.schema.json
var ContactResult []byte

//go:embed news_result.schema.json
var NewsResult []byte

//go:embed job.schema.json
var Job []byte

// ForKind returns the result schema matching an extraction kind.
func ForKind(kind types.Kind) []byte {
	switch kind {
	case types.KindContact:
		return ContactResult
	case types.KindNews:
		return NewsResult
	default:
		return ProfileResult
	}
}
