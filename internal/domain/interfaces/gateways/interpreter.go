package gateways

import (
	"context"

	"github.com/ochairo/sbomview/internal/domain/entities"
)

// CycloneDXInterpreter turns raw CycloneDX bytes into the normalized
// BOMInfo view. Implementations report *entities.ParseError for malformed
// input and *entities.FormatMismatchError for well-formed input that is
// not a CycloneDX document; the dispatcher branches on those values to
// decide whether to try the next format.
type CycloneDXInterpreter interface {
	Interpret(ctx context.Context, data []byte) (*entities.BOMInfo, error)
}

// SPDXGateway parses a staged SPDX file into the normalized view.
// The path's extension is used as a serialization hint; any parser
// failure means "SPDX interpretation failed" as far as the dispatcher
// is concerned.
type SPDXGateway interface {
	ParseFile(ctx context.Context, path string) (*entities.SPDXViewModel, error)
}
