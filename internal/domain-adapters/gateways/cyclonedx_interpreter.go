// Package gateways implements the document interpreters behind the
// domain ports.
package gateways

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/ochairo/sbomview/internal/domain/entities"
)

// licenseTextPlaceholder marks a license block whose only content is an
// embedded text blob; the blob itself is not extracted.
const licenseTextPlaceholder = "(license text)"

// cycloneDXInterpreter interprets CycloneDX XML documents without binding
// to any particular schema namespace or version
type cycloneDXInterpreter struct{}

// NewCycloneDXInterpreter creates a new CycloneDX XML interpreter
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewCycloneDXInterpreter() *cycloneDXInterpreter {
	return &cycloneDXInterpreter{}
}

// Interpret parses data as CycloneDX XML and projects it onto BOMInfo.
// Malformed XML yields *entities.ParseError; a well-formed document whose
// root local name is not "bom" yields *entities.FormatMismatchError.
// Missing optional elements never fail, they map to empty fields.
func (g *cycloneDXInterpreter) Interpret(_ context.Context, data []byte) (*entities.BOMInfo, error) {
	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, &entities.ParseError{Format: "CycloneDX XML", Cause: err}
	}

	if localName(root.tag()) != "bom" {
		return nil, &entities.FormatMismatchError{
			Detail: fmt.Sprintf("root element is <%s>, not <bom>", localName(root.tag())),
		}
	}

	info := &entities.BOMInfo{
		SerialNumber: attr(&root, "serialNumber"),
		SpecVersion:  attr(&root, "version"),
	}

	if md := firstChildByName(&root, "metadata"); md != nil {
		info.Metadata = extractMetadata(md)
	}

	if comps := firstChildByName(&root, "components"); comps != nil {
		for _, c := range childrenByName(comps, "component") {
			info.Components = append(info.Components, extractComponent(c))
		}
	}

	if deps := firstChildByName(&root, "dependencies"); deps != nil {
		for _, d := range childrenByName(deps, "dependency") {
			edge := entities.DependencyEdge{Ref: attr(d, "ref")}
			for _, nested := range childrenByName(d, "dependency") {
				// nested dependencies without a ref are skipped
				if ref := attr(nested, "ref"); ref != "" {
					edge.DependsOn = append(edge.DependsOn, ref)
				}
			}
			info.Dependencies = append(info.Dependencies, edge)
		}
	}

	return info, nil
}

func extractMetadata(md *xmlNode) entities.Metadata {
	out := entities.Metadata{
		Timestamp: text(firstChildByName(md, "timestamp")),
	}

	// Only the older bare <tool> list is recognized here; the 1.5+
	// tools/components shape yields an empty tool list, not an error.
	if tools := firstChildByName(md, "tools"); tools != nil {
		for _, tool := range childrenByName(tools, "tool") {
			out.Tools = append(out.Tools, entities.Tool{
				Vendor:  text(firstChildByName(tool, "vendor")),
				Name:    text(firstChildByName(tool, "name")),
				Version: text(firstChildByName(tool, "version")),
			})
		}
	}

	if comp := firstChildByName(md, "component"); comp != nil {
		c := extractComponent(comp)
		out.Component = &c
	}

	return out
}

func extractComponent(c *xmlNode) entities.Component {
	out := entities.Component{
		Type:    attr(c, "type"),
		BOMRef:  attr(c, "bom-ref"),
		Name:    text(firstChildByName(c, "name")),
		Version: text(firstChildByName(c, "version")),
		Purl:    text(firstChildByName(c, "purl")),
	}

	if licenses := firstChildByName(c, "licenses"); licenses != nil {
		for _, lic := range childrenByName(licenses, "license") {
			if s := licenseString(lic); s != "" {
				out.Licenses = append(out.Licenses, s)
			}
		}
	}

	return out
}

// licenseString picks the best textual form of one license block:
// id beats name beats the text placeholder. "" means the block carries
// nothing usable and is dropped by the caller.
func licenseString(lic *xmlNode) string {
	if id := text(firstChildByName(lic, "id")); id != "" {
		return id
	}
	if name := text(firstChildByName(lic, "name")); name != "" {
		return name
	}
	if firstChildByName(lic, "text") != nil {
		return licenseTextPlaceholder
	}
	return ""
}
