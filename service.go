package landing

import (
	"context"
	"fmt"

	"github.com/floridaliza5000-byte/No-code-Landing-Page/internal/assets"
)

// Service orchestrates the document-to-bundle export pipeline.
type Service struct {
	cfg       serviceConfig
	extractor assetExtractor
	compiler  documentCompiler
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithWorkers).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:      serviceConfig{workers: defaultWorkers},
		compiler: &htmlCompilation{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create extractor if not injected (e.g., by tests)
	if s.extractor == nil {
		s.extractor = &imageExtraction{workers: s.cfg.workers}
	}

	return s
}

// Export runs the full pipeline over one document snapshot and returns
// the bundle. The input document is never mutated: the asset pass works
// on a deep copy. opts may be nil for defaults. Per-block and per-asset
// problems degrade locally and surface in Bundle.Warnings; only invalid
// options or context cancellation fail the call.
func (s *Service) Export(ctx context.Context, doc Document, opts *ExportOptions) (*Bundle, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	resolved := opts.withDefaults()

	// Externalize embedded images on a cloned block list.
	blocks, extracted, err := s.extractor.ExtractAssets(ctx, doc.Blocks, resolved)
	if err != nil {
		return nil, fmt.Errorf("extracting assets: %w", err)
	}

	// Compile the asset-resolved document to HTML.
	resolvedDoc := Document{Title: doc.Title, Theme: doc.Theme, Blocks: blocks, Seo: doc.Seo}
	html, warnings, err := s.compiler.Compile(ctx, resolvedDoc)
	if err != nil {
		return nil, fmt.Errorf("compiling document: %w", err)
	}

	return &Bundle{
		HTML:     html,
		CSS:      assets.Stylesheet(),
		Readme:   assets.Readme(),
		Assets:   extracted,
		Warnings: warnings,
	}, nil
}
