package landing

import (
	"fmt"

	"github.com/google/uuid"
)

// BlockData is the closed union of kind-specific block payloads. The
// unexported marker method keeps the variant set fixed to the types in
// this file.
type BlockData interface {
	blockKind() BlockKind
}

// HeroData is the payload of a hero block.
type HeroData struct {
	Eyebrow  string
	Title    string
	Subtitle string
	CTAText  string
	CTALink  string
}

// Feature is one card in a features block.
type Feature struct {
	Title string
	Text  string
}

// FeaturesData is the payload of a features block.
type FeaturesData struct {
	Heading string
	Items   []Feature
}

// GalleryData is the payload of a gallery block. Each image is either a
// URL or an inline data-URI; inline images are externalized during
// export.
type GalleryData struct {
	Heading string
	Images  []string
}

// Testimonial is one quote in a testimonials block.
type Testimonial struct {
	Quote  string
	Author string
}

// TestimonialsData is the payload of a testimonials block.
type TestimonialsData struct {
	Heading string
	Items   []Testimonial
}

// Plan is one offer in a pricing block.
type Plan struct {
	Name      string
	Price     string
	Features  []string
	Highlight bool
	CTAText   string
	CTALink   string
}

// PricingData is the payload of a pricing block.
type PricingData struct {
	Heading string
	Plans   []Plan
}

// FormHandler selects how an exported contact form submits.
type FormHandler string

// Supported contact form handlers. Formspree posts to a URL built from
// the stored form ID; Netlify relies on host-level form interception
// and only needs a hidden marker field.
const (
	FormHandlerNone      FormHandler = "none"
	FormHandlerFormspree FormHandler = "formspree"
	FormHandlerNetlify   FormHandler = "netlify"
)

// ContactData is the payload of a contact block. EmailTo documents
// where submissions should end up; it is never rendered into the
// exported page.
type ContactData struct {
	Heading         string
	Subtext         string
	EmailTo         string
	Handler         FormHandler
	FormspreeID     string
	SuccessRedirect string
}

func (HeroData) blockKind() BlockKind         { return KindHero }
func (FeaturesData) blockKind() BlockKind     { return KindFeatures }
func (GalleryData) blockKind() BlockKind      { return KindGallery }
func (TestimonialsData) blockKind() BlockKind { return KindTestimonials }
func (PricingData) blockKind() BlockKind      { return KindPricing }
func (ContactData) blockKind() BlockKind      { return KindContact }

// blockTemplate is the per-kind descriptor: a human label, a
// default-data constructor, and the static HTML renderer. The editable
// on-screen view lives in the editor layer, not here.
type blockTemplate struct {
	Label      string
	NewData    func() BlockData
	StaticHTML func(data BlockData, theme Theme) string
}

// blockRegistry is the process-wide, read-only catalog. Every NewData
// call returns an independently mutable value: fresh slices, no shared
// sub-structures between two calls.
var blockRegistry = map[BlockKind]blockTemplate{
	KindHero: {
		Label: "Hero",
		NewData: func() BlockData {
			return HeroData{
				Eyebrow:  "Introducing",
				Title:    "Build beautiful pages fast",
				Subtitle: "A no-code landing page/portfolio builder with exportable HTML/CSS",
				CTAText:  "Get Started",
				CTALink:  "#contact",
			}
		},
		StaticHTML: renderHero,
	},
	KindFeatures: {
		Label: "Features",
		NewData: func() BlockData {
			return FeaturesData{
				Heading: "Why choose this?",
				Items: []Feature{
					{Title: "No-Code", Text: "Assemble sections and export static HTML/CSS."},
					{Title: "Beautiful", Text: "Modern, responsive, themeable components."},
					{Title: "Portable", Text: "No backend required. Works anywhere."},
				},
			}
		},
		StaticHTML: renderFeatures,
	},
	KindGallery: {
		Label: "Gallery",
		NewData: func() BlockData {
			return GalleryData{
				Heading: "Showcase",
				Images: []string{
					"https://picsum.photos/seed/a/640/400",
					"https://picsum.photos/seed/b/640/400",
					"https://picsum.photos/seed/c/640/400",
					"https://picsum.photos/seed/d/640/400",
					"https://picsum.photos/seed/e/640/400",
					"https://picsum.photos/seed/f/640/400",
				},
			}
		},
		StaticHTML: renderGallery,
	},
	KindTestimonials: {
		Label: "Testimonials",
		NewData: func() BlockData {
			return TestimonialsData{
				Heading: "What users say",
				Items: []Testimonial{
					{Quote: "Exactly what I needed to launch quickly.", Author: "Sofia"},
					{Quote: "Clean export and easy to customize.", Author: "Liam"},
				},
			}
		},
		StaticHTML: renderTestimonials,
	},
	KindPricing: {
		Label: "Pricing",
		NewData: func() BlockData {
			return PricingData{
				Heading: "Pricing",
				Plans: []Plan{
					{Name: "Starter", Price: "$9", Features: []string{"1 project", "Basic support"}, CTAText: "Choose Starter", CTALink: "#contact"},
					{Name: "Pro", Price: "$29", Features: []string{"Unlimited", "Priority support"}, Highlight: true, CTAText: "Choose Pro", CTALink: "#contact"},
					{Name: "Team", Price: "$79", Features: []string{"Team access", "SSO"}, CTAText: "Contact Sales", CTALink: "#contact"},
				},
			}
		},
		StaticHTML: renderPricing,
	},
	KindContact: {
		Label: "Contact",
		NewData: func() BlockData {
			return ContactData{
				Heading: "Contact us",
				Subtext: "Send us a message and we will get back to you soon.",
				EmailTo: "you@example.com",
				Handler: FormHandlerNone,
			}
		},
		StaticHTML: renderContact,
	},
}

// lookupTemplate resolves a kind to its template. A kind absent from
// the registry (plausible on a version mismatch between editor and
// exporter) is a recoverable condition: the compiler skips the block.
func lookupTemplate(kind BlockKind) (blockTemplate, error) {
	tpl, ok := blockRegistry[kind]
	if !ok {
		return blockTemplate{}, fmt.Errorf("%w: %q", ErrUnknownBlockKind, kind)
	}
	return tpl, nil
}

// BlockLabel returns the human label for a kind, or an error wrapping
// ErrUnknownBlockKind.
func BlockLabel(kind BlockKind) (string, error) {
	tpl, err := lookupTemplate(kind)
	if err != nil {
		return "", err
	}
	return tpl.Label, nil
}

// Kinds returns the catalog of block kinds in palette order.
func Kinds() []BlockKind {
	return []BlockKind{KindHero, KindFeatures, KindGallery, KindTestimonials, KindPricing, KindContact}
}

// NewBlockInstance creates a block of the given kind with fresh default
// data and a unique id.
func NewBlockInstance(kind BlockKind) (BlockInstance, error) {
	tpl, err := lookupTemplate(kind)
	if err != nil {
		return BlockInstance{}, err
	}
	return BlockInstance{
		ID:   uuid.NewString(),
		Kind: kind,
		Data: tpl.NewData(),
	}, nil
}
