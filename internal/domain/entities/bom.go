package entities

// BOMInfo is the normalized view of a CycloneDX document.
// All fields are read-only snapshots of the source document; an empty
// string means the source field was absent or textually empty (the two
// are deliberately not distinguished).
type BOMInfo struct {
	SerialNumber string
	SpecVersion  string // taken from the bom "version" attribute
	Metadata     Metadata
	Components   []Component
	Dependencies []DependencyEdge
}

// Metadata describes the document itself: when it was produced, by which
// tools, and optionally the root component the document is about.
type Metadata struct {
	Timestamp string
	Tools     []Tool
	Component *Component
}

// Tool identifies one producer of the document.
type Tool struct {
	Vendor  string
	Name    string
	Version string
}

// Component is one inventoried software component.
// Licenses holds the best available textual form of each license block:
// an SPDX id, a plain name, or the fixed "(license text)" placeholder.
// Unresolvable blocks are dropped, never represented as empty entries.
type Component struct {
	Type     string // "library", "application", ...
	BOMRef   string // opaque document-local identifier
	Name     string
	Version  string
	Purl     string
	Licenses []string
}

// DependencyEdge records that the component identified by Ref depends on
// the components identified by DependsOn. Refs are passed through as-is;
// dangling or self-referencing edges are legal and left unresolved.
type DependencyEdge struct {
	Ref       string
	DependsOn []string
}
