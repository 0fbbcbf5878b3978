package entities

// Report format tags.
const (
	FormatCycloneDX = "CycloneDX"
	FormatSPDX      = "SPDX"
)

// Report is the value handed to the renderer: exactly one of BOM or SPDX
// is set, together with the original upload filename. Constructed at
// request start, discarded at request end.
type Report struct {
	Filename string
	Format   string
	BOM      *BOMInfo
	SPDX     *SPDXViewModel
}

// PurlInfo is the parsed breakdown of a package-URL, for display only.
// It is derived, never fabricated: unparsable purls yield no PurlInfo.
type PurlInfo struct {
	Type      string
	Namespace string
	Name      string
	Version   string
	Subpath   string
}
