package spdx

import (
	"testing"

	"github.com/spdx/tools-golang/spdx"
	"github.com/spdx/tools-golang/spdx/v2/common"
)

func TestConvertDocument_Full(t *testing.T) {
	doc := &spdx.Document{
		SPDXVersion:       "SPDX-2.3",
		DataLicense:       "CC0-1.0",
		DocumentName:      "test-doc",
		DocumentNamespace: "https://example.com/test-doc",
		CreationInfo: &spdx.CreationInfo{
			Created: "2024-01-02T03:04:05Z",
			Creators: []common.Creator{
				{CreatorType: "Tool", Creator: "scanner-0.9"},
				{CreatorType: "Organization", Creator: "Acme"},
			},
		},
		Packages: []*spdx.Package{
			{
				PackageName:             "libx",
				PackageSPDXIdentifier:   "Package-libx",
				PackageVersion:          "2.0",
				PackageSupplier:         &common.Supplier{SupplierType: "Organization", Supplier: "Acme"},
				PackageDownloadLocation: "https://example.com/libx-2.0.tar.gz",
				PackageLicenseDeclared:  "MIT",
				PackageLicenseConcluded: "MIT AND Apache-2.0",
				PackageExternalReferences: []*spdx.PackageExternalReference{
					{Category: "PACKAGE-MANAGER", RefType: "purl", Locator: "pkg:golang/libx@2.0"},
					{Category: "PACKAGE-MANAGER", RefType: "purl", Locator: "pkg:npm/libx@2.0"},
				},
			},
		},
	}

	vm, err := convertDocument(doc)
	if err != nil {
		t.Fatalf("convertDocument() error = %v", err)
	}

	if vm.SPDXVersion != "SPDX-2.3" || vm.DataLicense != "CC0-1.0" {
		t.Errorf("document fields = %+v", vm)
	}
	if vm.DocumentName != "test-doc" || vm.DocumentNamespace != "https://example.com/test-doc" {
		t.Errorf("document identity = %+v", vm)
	}
	if vm.Created != "2024-01-02T03:04:05Z" {
		t.Errorf("Created = %q", vm.Created)
	}
	if len(vm.Creators) != 2 || vm.Creators[0] != "Tool: scanner-0.9" || vm.Creators[1] != "Organization: Acme" {
		t.Errorf("Creators = %v", vm.Creators)
	}

	if len(vm.Packages) != 1 {
		t.Fatalf("Packages count = %d, want 1", len(vm.Packages))
	}
	p := vm.Packages[0]
	if p.SPDXID != "SPDXRef-Package-libx" {
		t.Errorf("SPDXID = %q, want SPDXRef-Package-libx", p.SPDXID)
	}
	if p.Name != "libx" || p.Version != "2.0" {
		t.Errorf("package identity = %+v", p)
	}
	if p.Supplier != "Organization: Acme" {
		t.Errorf("Supplier = %q", p.Supplier)
	}
	if p.LicenseDeclared != "MIT" || p.LicenseConcluded != "MIT AND Apache-2.0" {
		t.Errorf("license fields = %+v", p)
	}
	// First external reference only.
	if p.Purl != "pkg:golang/libx@2.0" {
		t.Errorf("Purl = %q, want the first external reference", p.Purl)
	}
}

func TestConvertDocument_FirstRefNotPurl(t *testing.T) {
	doc := &spdx.Document{
		CreationInfo: &spdx.CreationInfo{},
		Packages: []*spdx.Package{
			{
				PackageName: "liby",
				PackageExternalReferences: []*spdx.PackageExternalReference{
					{Category: "SECURITY", RefType: "cpe23Type", Locator: "cpe:2.3:a:liby"},
					// A purl in a later reference is deliberately ignored.
					{Category: "PACKAGE-MANAGER", RefType: "purl", Locator: "pkg:golang/liby@1.0"},
				},
			},
		},
	}

	vm, err := convertDocument(doc)
	if err != nil {
		t.Fatalf("convertDocument() error = %v", err)
	}
	if vm.Packages[0].Purl != "" {
		t.Errorf("Purl = %q, want empty when the first reference is not a purl", vm.Packages[0].Purl)
	}
}

func TestConvertDocument_FailsFast(t *testing.T) {
	if _, err := convertDocument(nil); err == nil {
		t.Error("convertDocument(nil) should fail")
	}

	if _, err := convertDocument(&spdx.Document{}); err == nil {
		t.Error("convertDocument() should fail on missing creation info")
	}
}

func TestSupplierString(t *testing.T) {
	tests := []struct {
		name string
		in   *common.Supplier
		want string
	}{
		{"nil", nil, ""},
		{"typed", &common.Supplier{SupplierType: "Person", Supplier: "Jane Doe"}, "Person: Jane Doe"},
		{"noassertion", &common.Supplier{SupplierType: "NOASSERTION", Supplier: "NOASSERTION"}, "NOASSERTION"},
	}

	for _, tt := range tests {
		if got := supplierString(tt.in); got != tt.want {
			t.Errorf("supplierString(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
