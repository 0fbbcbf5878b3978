// Package services implements domain business logic and use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ochairo/sbomview/internal/domain/entities"
	"github.com/ochairo/sbomview/internal/domain/interfaces"
	"github.com/ochairo/sbomview/internal/domain/interfaces/gateways"
)

// interpreterService classifies uploaded documents and dispatches them to
// the matching interpreter: CycloneDX first for .xml/.json uploads, SPDX
// as the fallback for everything else.
type interpreterService struct {
	xml        gateways.CycloneDXInterpreter
	json       gateways.CycloneDXInterpreter
	spdx       gateways.SPDXGateway
	stagingDir string
	logger     interfaces.Logger
}

// NewInterpreterService creates the dispatcher with dependency injection.
// An empty stagingDir falls back to the OS temp dir; a nil logger is
// replaced by a no-op one.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewInterpreterService(xmlInterp, jsonInterp gateways.CycloneDXInterpreter, spdxGateway gateways.SPDXGateway, stagingDir string, logger interfaces.Logger) *interpreterService {
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &interpreterService{
		xml:        xmlInterp,
		json:       jsonInterp,
		spdx:       spdxGateway,
		stagingDir: stagingDir,
		logger:     logger,
	}
}

// Interpret classifies data by the upload's extension, runs the matching
// interpreters and returns exactly one fully populated report, or an
// *entities.UnrecognizedFormatError when nothing matched. Interpretation
// is all-or-nothing: no partial report is ever returned.
func (s *interpreterService) Interpret(ctx context.Context, filename string, data []byte) (*entities.Report, error) {
	var cdxErr error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xml":
		bom, err := s.xml.Interpret(ctx, data)
		if err == nil {
			return &entities.Report{Filename: filename, Format: entities.FormatCycloneDX, BOM: bom}, nil
		}
		if !isFormatError(err) {
			return nil, err
		}
		cdxErr = err
	case ".json":
		bom, err := s.json.Interpret(ctx, data)
		if err == nil {
			return &entities.Report{Filename: filename, Format: entities.FormatCycloneDX, BOM: bom}, nil
		}
		if !isFormatError(err) {
			return nil, err
		}
		cdxErr = err
	}

	vm, spdxErr := s.interpretSPDX(ctx, filename, data)
	if spdxErr == nil {
		return &entities.Report{Filename: filename, Format: entities.FormatSPDX, SPDX: vm}, nil
	}

	// The caller only learns that nothing matched; the per-interpreter
	// diagnostics stay in the debug log.
	s.logger.Debug("no interpreter matched",
		interfaces.F("filename", filename),
		interfaces.F("cyclonedx_error", cdxErr),
		interfaces.F("spdx_error", spdxErr))

	return nil, &entities.UnrecognizedFormatError{}
}

// interpretSPDX stages the document to a uniquely named file for the
// SPDX parser and guarantees removal of the staging file on every exit
// path. Filenames without an extension are hinted as .txt.
func (s *interpreterService) interpretSPDX(ctx context.Context, filename string, data []byte) (*entities.SPDXViewModel, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".txt"
	}

	path := filepath.Join(s.stagingDir, "sbomview-"+uuid.NewString()+ext)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to stage document: %w", err)
	}
	//nolint:errcheck // Best-effort removal of the request-scoped staging file
	defer os.Remove(path)

	return s.spdx.ParseFile(ctx, path)
}

// isFormatError reports whether err is one of the two classification
// outcomes that trigger the SPDX fallback, as opposed to an
// infrastructure failure that must propagate.
func isFormatError(err error) bool {
	var parseErr *entities.ParseError
	var mismatch *entities.FormatMismatchError
	return errors.As(err, &parseErr) || errors.As(err, &mismatch)
}
