// Package spdx wraps the spdx/tools-golang loaders behind the domain's
// SPDX gateway port and maps the parsed document onto the display view.
package spdx

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	spdxjson "github.com/spdx/tools-golang/json"
	spdxrdf "github.com/spdx/tools-golang/rdf"
	"github.com/spdx/tools-golang/spdx"
	spdxtv "github.com/spdx/tools-golang/tagvalue"
	spdxyaml "github.com/spdx/tools-golang/yaml"

	"github.com/ochairo/sbomview/internal/domain/entities"
)

type loader struct {
	name string
	read func(io.Reader) (*spdx.Document, error)
}

var loaders = []loader{
	{name: "tag-value", read: spdxtv.Read},
	{name: "json", read: spdxjson.Read},
	{name: "yaml", read: spdxyaml.Read},
	{name: "rdf", read: spdxrdf.Read},
}

// parserGateway loads SPDX documents from staged files
type parserGateway struct{}

// NewParserGateway creates a new SPDX parser gateway
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewParserGateway() *parserGateway {
	return &parserGateway{}
}

// ParseFile reads the staged file at path, trying the serialization
// hinted by the extension first and falling back through the remaining
// loaders. Any failure across all loaders means the document is not
// recognizable SPDX.
func (g *parserGateway) ParseFile(_ context.Context, path string) (*entities.SPDXViewModel, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is the request-scoped staging file
	if err != nil {
		return nil, fmt.Errorf("failed to open staged file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	var errs []string
	for _, l := range orderByHint(filepath.Ext(path)) {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind staged file: %w", err)
		}

		doc, err := l.read(f)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", l.name, err))
			continue
		}

		return convertDocument(doc)
	}

	return nil, fmt.Errorf("no SPDX loader accepted the document (%s)", strings.Join(errs, "; "))
}

// orderByHint moves the loader matching the extension hint to the front;
// relative order of the rest is preserved.
func orderByHint(ext string) []loader {
	var hinted string
	switch strings.ToLower(ext) {
	case ".json":
		hinted = "json"
	case ".yaml", ".yml":
		hinted = "yaml"
	case ".rdf", ".xml":
		hinted = "rdf"
	default:
		hinted = "tag-value"
	}

	out := make([]loader, 0, len(loaders))
	for _, l := range loaders {
		if l.name == hinted {
			out = append(out, l)
		}
	}
	for _, l := range loaders {
		if l.name != hinted {
			out = append(out, l)
		}
	}
	return out
}
