package spdx

import (
	"fmt"

	"github.com/spdx/tools-golang/spdx"
	"github.com/spdx/tools-golang/spdx/v2/common"

	"github.com/ochairo/sbomview/internal/domain/entities"
)

// purlRefType is the external-reference marker carrying a package-URL.
const purlRefType = "purl"

// spdxRefPrefix is the conventional prefix for SPDX element identifiers.
const spdxRefPrefix = "SPDXRef-"

// convertDocument maps a parsed SPDX document onto the display view.
// The mapping is static field projection, no validation of values; a
// structurally absent document or creation-info section fails fast
// instead of producing a partial view.
func convertDocument(doc *spdx.Document) (*entities.SPDXViewModel, error) {
	if doc == nil {
		return nil, fmt.Errorf("SPDX parser returned no document")
	}
	if doc.CreationInfo == nil {
		return nil, fmt.Errorf("SPDX document has no creation info section")
	}

	vm := &entities.SPDXViewModel{
		SPDXVersion:       doc.SPDXVersion,
		DataLicense:       doc.DataLicense,
		DocumentNamespace: doc.DocumentNamespace,
		DocumentName:      doc.DocumentName,
		Created:           doc.CreationInfo.Created,
	}

	for _, c := range doc.CreationInfo.Creators {
		vm.Creators = append(vm.Creators, c.CreatorType+": "+c.Creator)
	}

	for _, p := range doc.Packages {
		if p == nil {
			continue
		}
		vm.Packages = append(vm.Packages, convertPackage(p))
	}

	return vm, nil
}

func convertPackage(p *spdx.Package) entities.SPDXPackage {
	out := entities.SPDXPackage{
		Name:             p.PackageName,
		Version:          p.PackageVersion,
		Supplier:         supplierString(p.PackageSupplier),
		DownloadLocation: p.PackageDownloadLocation,
		LicenseDeclared:  p.PackageLicenseDeclared,
		LicenseConcluded: p.PackageLicenseConcluded,
	}

	if p.PackageSPDXIdentifier != "" {
		out.SPDXID = spdxRefPrefix + string(p.PackageSPDXIdentifier)
	}

	// Only the first external reference is considered, and only when it
	// carries the purl ref-type marker.
	if len(p.PackageExternalReferences) > 0 {
		if ref := p.PackageExternalReferences[0]; ref != nil && ref.RefType == purlRefType {
			out.Purl = ref.Locator
		}
	}

	return out
}

// supplierString collapses the typed supplier into one display string,
// e.g. "Organization: Acme". NOASSERTION passes through untyped.
func supplierString(s *common.Supplier) string {
	if s == nil {
		return ""
	}
	if s.SupplierType != "" && s.Supplier != "NOASSERTION" {
		return s.SupplierType + ": " + s.Supplier
	}
	return s.Supplier
}
