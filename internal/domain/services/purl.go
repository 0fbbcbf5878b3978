package services

import (
	"github.com/package-url/packageurl-go"

	"github.com/ochairo/sbomview/internal/domain/entities"
)

// PurlBreakdown parses a package-URL into its display parts. It returns
// nil for empty or unparsable input; a breakdown is derived from the
// purl or not shown at all.
func PurlBreakdown(purl string) *entities.PurlInfo {
	if purl == "" {
		return nil
	}

	p, err := packageurl.FromString(purl)
	if err != nil {
		return nil
	}

	return &entities.PurlInfo{
		Type:      p.Type,
		Namespace: p.Namespace,
		Name:      p.Name,
		Version:   p.Version,
		Subpath:   p.Subpath,
	}
}
