package main

import (
	"errors"
	"fmt"
	"os"

	landing "github.com/floridaliza5000-byte/No-code-Landing-Page"
	"github.com/floridaliza5000-byte/No-code-Landing-Page/internal/yamlutil"
	"github.com/google/uuid"
)

// Sentinel errors for document file operations.
var (
	ErrReadDocument  = errors.New("failed to read document file")
	ErrParseDocument = errors.New("failed to parse document file")
	ErrEmptyKind     = errors.New("block is missing a kind")
)

// documentFile is the on-disk YAML shape of an exportable document.
// It mirrors the library types with yaml tags; conversion to
// landing.Document happens in toDocument.
type documentFile struct {
	Title  string      `yaml:"title"`
	Theme  *themeFile  `yaml:"theme"`
	Seo    *seoFile    `yaml:"seo"`
	Blocks []blockFile `yaml:"blocks"`
}

type themeFile struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	FontFamily string `yaml:"fontFamily"`
}

type seoFile struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"ogImage"`
}

// blockFile carries the kind tag plus the raw data mapping. Data stays
// untyped here; decodeBlockData re-parses it against the kind-specific
// shape. A block without data gets the registry defaults.
type blockFile struct {
	ID   string         `yaml:"id"`
	Kind string         `yaml:"kind"`
	Data map[string]any `yaml:"data"`
}

type heroFile struct {
	Eyebrow  string `yaml:"eyebrow"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTAText  string `yaml:"ctaText"`
	CTALink  string `yaml:"ctaLink"`
}

type featureFile struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type featuresFile struct {
	Heading string        `yaml:"heading"`
	Items   []featureFile `yaml:"items"`
}

type galleryFile struct {
	Heading string   `yaml:"heading"`
	Images  []string `yaml:"images"`
}

type testimonialFile struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
}

type testimonialsFile struct {
	Heading string            `yaml:"heading"`
	Items   []testimonialFile `yaml:"items"`
}

type planFile struct {
	Name      string   `yaml:"name"`
	Price     string   `yaml:"price"`
	Features  []string `yaml:"features"`
	Highlight bool     `yaml:"highlight"`
	CTAText   string   `yaml:"ctaText"`
	CTALink   string   `yaml:"ctaLink"`
}

type pricingFile struct {
	Heading string     `yaml:"heading"`
	Plans   []planFile `yaml:"plans"`
}

type contactFile struct {
	Heading         string `yaml:"heading"`
	Subtext         string `yaml:"subtext"`
	EmailTo         string `yaml:"emailTo"`
	Handler         string `yaml:"handler"`
	FormspreeID     string `yaml:"formspreeId"`
	SuccessRedirect string `yaml:"successRedirect"`
}

// loadDocument reads and parses a document file into library types.
func loadDocument(path string) (landing.Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- document path is user-provided
	if err != nil {
		return landing.Document{}, fmt.Errorf("%w: %v", ErrReadDocument, err)
	}

	var df documentFile
	if err := yamlutil.UnmarshalStrict(data, &df); err != nil {
		return landing.Document{}, fmt.Errorf("%w: %v", ErrParseDocument, err)
	}

	return df.toDocument()
}

// toDocument converts the file representation to a landing.Document.
func (df *documentFile) toDocument() (landing.Document, error) {
	doc := landing.Document{
		Title: df.Title,
		Theme: landing.DefaultTheme(),
	}

	if t := df.Theme; t != nil {
		if t.Background != "" {
			doc.Theme.Background = t.Background
		}
		if t.Text != "" {
			doc.Theme.Text = t.Text
		}
		if t.Primary != "" {
			doc.Theme.Primary = t.Primary
		}
		if t.Secondary != "" {
			doc.Theme.Secondary = t.Secondary
		}
		if t.FontFamily != "" {
			doc.Theme.FontFamily = t.FontFamily
		}
	}

	if s := df.Seo; s != nil {
		doc.Seo = &landing.Seo{
			Title:       s.Title,
			Description: s.Description,
			OGImage:     s.OGImage,
		}
	}

	for i, bf := range df.Blocks {
		block, err := bf.toBlock()
		if err != nil {
			return landing.Document{}, fmt.Errorf("block %d: %w", i, err)
		}
		doc.Blocks = append(doc.Blocks, block)
	}

	return doc, nil
}

// toBlock converts one file block, generating an id when absent.
func (bf *blockFile) toBlock() (landing.BlockInstance, error) {
	if bf.Kind == "" {
		return landing.BlockInstance{}, ErrEmptyKind
	}
	kind := landing.BlockKind(bf.Kind)

	block, err := landing.NewBlockInstance(kind)
	if err != nil {
		return landing.BlockInstance{}, err
	}
	if bf.ID != "" {
		block.ID = bf.ID
	} else {
		block.ID = uuid.NewString()
	}

	if bf.Data != nil {
		data, err := decodeBlockData(kind, bf.Data)
		if err != nil {
			return landing.BlockInstance{}, err
		}
		block.Data = data
	}

	return block, nil
}

// decodeBlockData re-parses the raw data mapping against the shape of
// its kind. The round-trip through YAML keeps the strict unknown-field
// checking of the top-level parse.
func decodeBlockData(kind landing.BlockKind, raw map[string]any) (landing.BlockData, error) {
	buf, err := yamlutil.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseDocument, err)
	}

	unmarshal := func(v any) error {
		if err := yamlutil.UnmarshalStrict(buf, v); err != nil {
			return fmt.Errorf("%w: %s data: %v", ErrParseDocument, kind, err)
		}
		return nil
	}

	switch kind {
	case landing.KindHero:
		var f heroFile
		if err := unmarshal(&f); err != nil {
			return nil, err
		}
		return landing.HeroData{
			Eyebrow:  f.Eyebrow,
			Title:    f.Title,
			Subtitle: f.Subtitle,
			CTAText:  f.CTAText,
			CTALink:  f.CTALink,
		}, nil

	case landing.KindFeatures:
		var f featuresFile
		if err := unmarshal(&f); err != nil {
			return nil, err
		}
		items := make([]landing.Feature, len(f.Items))
		for i, it := range f.Items {
			items[i] = landing.Feature(it)
		}
		return landing.FeaturesData{Heading: f.Heading, Items: items}, nil

	case landing.KindGallery:
		var f galleryFile
		if err := unmarshal(&f); err != nil {
			return nil, err
		}
		return landing.GalleryData{Heading: f.Heading, Images: f.Images}, nil

	case landing.KindTestimonials:
		var f testimonialsFile
		if err := unmarshal(&f); err != nil {
			return nil, err
		}
		items := make([]landing.Testimonial, len(f.Items))
		for i, it := range f.Items {
			items[i] = landing.Testimonial(it)
		}
		return landing.TestimonialsData{Heading: f.Heading, Items: items}, nil

	case landing.KindPricing:
		var f pricingFile
		if err := unmarshal(&f); err != nil {
			return nil, err
		}
		plans := make([]landing.Plan, len(f.Plans))
		for i, p := range f.Plans {
			plans[i] = landing.Plan{
				Name:      p.Name,
				Price:     p.Price,
				Features:  p.Features,
				Highlight: p.Highlight,
				CTAText:   p.CTAText,
				CTALink:   p.CTALink,
			}
		}
		return landing.PricingData{Heading: f.Heading, Plans: plans}, nil

	case landing.KindContact:
		var f contactFile
		if err := unmarshal(&f); err != nil {
			return nil, err
		}
		handler := landing.FormHandler(f.Handler)
		if f.Handler == "" {
			handler = landing.FormHandlerNone
		}
		return landing.ContactData{
			Heading:         f.Heading,
			Subtext:         f.Subtext,
			EmailTo:         f.EmailTo,
			Handler:         handler,
			FormspreeID:     f.FormspreeID,
			SuccessRedirect: f.SuccessRedirect,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", landing.ErrUnknownBlockKind, kind)
	}
}
