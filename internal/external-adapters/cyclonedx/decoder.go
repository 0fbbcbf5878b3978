// Package cyclonedx adapts CycloneDX JSON documents onto the domain view
// model through the cyclonedx-go decoder. The XML dialect is interpreted
// by hand elsewhere; this adapter only covers the JSON serialization.
package cyclonedx

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/ochairo/sbomview/internal/domain/entities"
)

const licenseTextPlaceholder = "(license text)"

// jsonInterpreter decodes CycloneDX JSON into BOMInfo
type jsonInterpreter struct{}

// NewJSONInterpreter creates a new CycloneDX JSON interpreter
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewJSONInterpreter() *jsonInterpreter {
	return &jsonInterpreter{}
}

// Interpret decodes data as CycloneDX JSON and projects it onto BOMInfo.
// Invalid JSON yields *entities.ParseError; valid JSON that is not a
// CycloneDX document yields *entities.FormatMismatchError.
func (g *jsonInterpreter) Interpret(_ context.Context, data []byte) (*entities.BOMInfo, error) {
	var bom cdx.BOM
	decoder := cdx.NewBOMDecoder(bytes.NewReader(data), cdx.BOMFileFormatJSON)
	if err := decoder.Decode(&bom); err != nil {
		return nil, &entities.ParseError{Format: "CycloneDX JSON", Cause: err}
	}

	// The decoder accepts any JSON object; require the CycloneDX marker
	// before claiming a match.
	if bom.BOMFormat != "CycloneDX" && !strings.HasPrefix(bom.XMLNS, "http://cyclonedx.org/schema/bom") {
		return nil, &entities.FormatMismatchError{Detail: "JSON document carries no CycloneDX bomFormat marker"}
	}

	info := &entities.BOMInfo{
		SerialNumber: bom.SerialNumber,
	}
	if bom.Version > 0 {
		info.SpecVersion = strconv.Itoa(bom.Version)
	}

	if bom.Metadata != nil {
		info.Metadata = convertMetadata(bom.Metadata)
	}

	if bom.Components != nil {
		for i := range *bom.Components {
			info.Components = append(info.Components, convertComponent(&(*bom.Components)[i]))
		}
	}

	if bom.Dependencies != nil {
		for _, d := range *bom.Dependencies {
			edge := entities.DependencyEdge{Ref: d.Ref}
			if d.Dependencies != nil {
				edge.DependsOn = append(edge.DependsOn, *d.Dependencies...)
			}
			info.Dependencies = append(info.Dependencies, edge)
		}
	}

	return info, nil
}

func convertMetadata(md *cdx.Metadata) entities.Metadata {
	out := entities.Metadata{
		Timestamp: strings.TrimSpace(md.Timestamp),
	}

	if md.Tools != nil {
		// Legacy bare tool list.
		if md.Tools.Tools != nil {
			for _, tool := range *md.Tools.Tools {
				out.Tools = append(out.Tools, entities.Tool{
					Vendor:  tool.Vendor,
					Name:    tool.Name,
					Version: tool.Version,
				})
			}
		}
		// 1.5+ tools-as-components shape.
		if md.Tools.Components != nil {
			for _, c := range *md.Tools.Components {
				vendor := c.Publisher
				if vendor == "" {
					vendor = c.Group
				}
				out.Tools = append(out.Tools, entities.Tool{
					Vendor:  vendor,
					Name:    c.Name,
					Version: c.Version,
				})
			}
		}
	}

	if md.Component != nil {
		c := convertComponent(md.Component)
		out.Component = &c
	}

	return out
}

func convertComponent(c *cdx.Component) entities.Component {
	out := entities.Component{
		Type:    string(c.Type),
		BOMRef:  c.BOMRef,
		Name:    strings.TrimSpace(c.Name),
		Version: strings.TrimSpace(c.Version),
		Purl:    strings.TrimSpace(c.PackageURL),
	}

	if c.Licenses != nil {
		for _, lc := range *c.Licenses {
			if s := licenseString(lc); s != "" {
				out.Licenses = append(out.Licenses, s)
			}
		}
	}

	return out
}

// licenseString mirrors the XML path's precedence: expression or id
// beats name beats the text placeholder, unresolvable blocks drop out.
func licenseString(lc cdx.LicenseChoice) string {
	if lc.Expression != "" {
		return lc.Expression
	}
	if lc.License == nil {
		return ""
	}
	if lc.License.ID != "" {
		return lc.License.ID
	}
	if lc.License.Name != "" {
		return lc.License.Name
	}
	if lc.License.Text != nil {
		return licenseTextPlaceholder
	}
	return ""
}
