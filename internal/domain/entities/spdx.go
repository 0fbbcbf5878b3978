package entities

// SPDXViewModel is the normalized, display-ready view of an SPDX document.
// Like BOMInfo it is a pure snapshot; empty string means absent.
type SPDXViewModel struct {
	SPDXVersion       string
	DataLicense       string
	DocumentNamespace string
	DocumentName      string
	Created           string
	Creators          []string
	Packages          []SPDXPackage
}

// SPDXPackage is one package entry of an SPDX document.
// License fields carry the expression's string form; no expression
// evaluation is performed. Purl comes from the first external reference
// carrying a purl ref-type marker, all others are ignored.
type SPDXPackage struct {
	SPDXID           string
	Name             string
	Version          string
	Supplier         string
	DownloadLocation string
	LicenseDeclared  string
	LicenseConcluded string
	Purl             string
}
