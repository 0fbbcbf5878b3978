package gateways

import (
	"encoding/xml"
	"strings"
)

// xmlNode is a generic, namespace-carrying view of one XML element.
// encoding/xml fills the tree recursively through the ",any" rule.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []xmlNode  `xml:",any"`
	Text     string     `xml:",chardata"`
}

// tag returns the element name in "{namespace}name" form, or the bare
// name when the element is unqualified.
func (n *xmlNode) tag() string {
	if n.XMLName.Space != "" {
		return "{" + n.XMLName.Space + "}" + n.XMLName.Local
	}
	return n.XMLName.Local
}

// localName strips a leading {namespace} qualifier from a tag
func localName(tag string) string {
	if strings.HasPrefix(tag, "{") {
		if i := strings.Index(tag, "}"); i >= 0 {
			return tag[i+1:]
		}
	}
	return tag
}

// firstChildByName returns the first direct child with the given local
// name, in document order, or nil. Lookup never descends below the
// immediate child level.
func firstChildByName(n *xmlNode, name string) *xmlNode {
	for i := range n.Children {
		if localName(n.Children[i].tag()) == name {
			return &n.Children[i]
		}
	}
	return nil
}

// childrenByName returns all direct children with the given local name,
// in document order
func childrenByName(n *xmlNode, name string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Children {
		if localName(n.Children[i].tag()) == name {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// attr returns the value of the attribute with the given local name,
// or "" when absent
func attr(n *xmlNode, name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// text returns the element's trimmed character data. A nil node and a
// textually empty element both yield "", deliberately: "empty tag" and
// "missing tag" are not distinguished.
func text(n *xmlNode) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Text)
}
