package landing

import "fmt"

// BlockKind identifies one of the fixed catalog of block types.
type BlockKind string

// The closed set of block kinds. Adding a kind requires a matching
// registry entry in blocks.go.
const (
	KindHero         BlockKind = "hero"
	KindFeatures     BlockKind = "features"
	KindGallery      BlockKind = "gallery"
	KindTestimonials BlockKind = "testimonials"
	KindPricing      BlockKind = "pricing"
	KindContact      BlockKind = "contact"
)

// BlockInstance is one content section of a document. ID is an opaque
// identifier that stays stable across reordering and duplication; Data
// must be the variant matching Kind.
type BlockInstance struct {
	ID   string
	Kind BlockKind
	Data BlockData
}

// Theme holds the colors and font shared read-only by every block
// renderer and by the document shell.
type Theme struct {
	Background string
	Text       string
	Primary    string
	Secondary  string
	FontFamily string
}

// DefaultTheme returns the theme baked into the exported stylesheet.
func DefaultTheme() Theme {
	return Theme{
		Background: "#0f172a",
		Text:       "#e2e8f0",
		Primary:    "#3b82f6",
		Secondary:  "#10b981",
		FontFamily: "Inter, system-ui, Avenir, Helvetica, Arial, sans-serif",
	}
}

// Seo carries optional page metadata. Title falls back to the document
// title when empty; Description and OGImage are each independently
// optional and omitted from the output when empty.
type Seo struct {
	Title       string
	Description string
	OGImage     string
}

// Document is the unit the export pipeline consumes: an ordered block
// list plus theme and metadata. The pipeline treats it as an immutable
// snapshot; all transformation happens on a deep copy.
type Document struct {
	Title  string
	Theme  Theme
	Blocks []BlockInstance
	Seo    *Seo
}

// Image optimization bounds and defaults.
const (
	DefaultMaxWidth = 1600
	DefaultQuality  = 0.82
)

// ExportOptions configures the asset optimization pass.
// A nil *ExportOptions means no optimization and default limits.
type ExportOptions struct {
	OptimizeImages bool    // re-encode and downscale embedded images
	MaxWidth       int     // pixels, images wider than this are downscaled
	Quality        float64 // encoder quality in (0,1]
}

// Validate checks that export options are valid.
// Returns nil if o is nil (nil means use defaults).
func (o *ExportOptions) Validate() error {
	if o == nil {
		return nil
	}
	if o.MaxWidth < 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidMaxWidth, o.MaxWidth)
	}
	if o.Quality < 0 || o.Quality > 1 {
		return fmt.Errorf("%w: %.2f (must be in (0,1])", ErrInvalidQuality, o.Quality)
	}
	return nil
}

// withDefaults resolves zero values to the documented defaults.
func (o *ExportOptions) withDefaults() ExportOptions {
	out := ExportOptions{MaxWidth: DefaultMaxWidth, Quality: DefaultQuality}
	if o == nil {
		return out
	}
	out.OptimizeImages = o.OptimizeImages
	if o.MaxWidth > 0 {
		out.MaxWidth = o.MaxWidth
	}
	if o.Quality > 0 {
		out.Quality = o.Quality
	}
	return out
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	workers int
}

// defaultWorkers bounds concurrent image processing when no worker
// count is specified.
const defaultWorkers = 4

// WithWorkers sets the number of images processed concurrently during
// the asset pass. Panics if n <= 0 (programmer error, similar to
// time.NewTicker).
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("landing: WithWorkers count must be positive")
	}
	return func(s *Service) {
		s.cfg.workers = n
	}
}
