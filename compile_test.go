package landing

// Notes:
// - shell: title fallback chain, optional SEO metas, font link, theme vars
// - block folding: document order, unknown-kind skip with warning
// - renderers: per-kind markup, escaping of user text, contact handler modes
// - determinism: identical documents compile to identical bytes

import (
	"context"
	"strings"
	"testing"
)

func compile(t *testing.T, doc Document) (string, []string) {
	t.Helper()

	html, warnings, err := (&htmlCompilation{}).Compile(context.Background(), doc)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	return html, warnings
}

func mustBlock(t *testing.T, kind BlockKind) BlockInstance {
	t.Helper()

	b, err := NewBlockInstance(kind)
	if err != nil {
		t.Fatalf("NewBlockInstance(%q) error: %v", kind, err)
	}
	return b
}

// ---------------------------------------------------------------------------
// TestCompileShell - Document Shell Assembly
// ---------------------------------------------------------------------------

func TestCompileShell(t *testing.T) {
	t.Parallel()

	t.Run("empty document still yields a full shell", func(t *testing.T) {
		t.Parallel()

		html, warnings := compile(t, Document{Title: "Empty", Theme: DefaultTheme()})
		if len(warnings) != 0 {
			t.Errorf("unexpected warnings: %v", warnings)
		}
		for _, want := range []string{
			"<!doctype html>",
			`<meta charset="UTF-8" />`,
			"<title>Empty</title>",
			`<link rel="stylesheet" href="styles.css" />`,
			"https://fonts.googleapis.com/css2?family=Inter",
			":root{--bg:#0f172a",
			"<main>",
			"<footer>" + footerCredit + "</footer>",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("document missing %q", want)
			}
		}
	})

	t.Run("title falls back to document title without seo", func(t *testing.T) {
		t.Parallel()

		html, _ := compile(t, Document{Title: "Fallback <Title>", Theme: DefaultTheme()})
		if !strings.Contains(html, "<title>Fallback &lt;Title&gt;</title>") {
			t.Error("escaped document title not used for <title>")
		}
		if strings.Contains(html, `<meta name="description"`) {
			t.Error("description meta emitted without seo data")
		}
		if strings.Contains(html, `og:image`) {
			t.Error("og:image meta emitted without seo data")
		}
	})

	t.Run("seo metadata emitted when present", func(t *testing.T) {
		t.Parallel()

		html, _ := compile(t, Document{
			Title: "Doc",
			Theme: DefaultTheme(),
			Seo: &Seo{
				Title:       "SEO Title",
				Description: `A "great" page`,
				OGImage:     "https://example.com/og.png",
			},
		})
		for _, want := range []string{
			"<title>SEO Title</title>",
			`<meta name="description" content="A &quot;great&quot; page" />`,
			`<meta property="og:title" content="SEO Title" />`,
			`<meta property="og:description" content="A &quot;great&quot; page" />`,
			`<meta property="og:image" content="https://example.com/og.png" />`,
			`<meta property="og:type" content="website" />`,
		} {
			if !strings.Contains(html, want) {
				t.Errorf("document missing %q", want)
			}
		}
	})

	t.Run("theme font picks matching stylesheet link", func(t *testing.T) {
		t.Parallel()

		theme := DefaultTheme()
		theme.FontFamily = "Montserrat, sans-serif"
		html, _ := compile(t, Document{Title: "Doc", Theme: theme})
		if !strings.Contains(html, "family=Montserrat:wght@400;700;900&amp;display=swap") {
			t.Error("Montserrat font link missing")
		}
	})
}

// ---------------------------------------------------------------------------
// TestCompileBlocks - Ordering And Skip Semantics
// ---------------------------------------------------------------------------

func TestCompileBlocks(t *testing.T) {
	t.Parallel()

	t.Run("document order preserved", func(t *testing.T) {
		t.Parallel()

		doc := Document{Title: "Doc", Theme: DefaultTheme(), Blocks: []BlockInstance{
			mustBlock(t, KindPricing),
			mustBlock(t, KindHero),
		}}
		html, _ := compile(t, doc)
		pricing := strings.Index(html, `class="b-pricing"`)
		hero := strings.Index(html, `class="b-hero"`)
		if pricing == -1 || hero == -1 {
			t.Fatal("expected both sections in output")
		}
		if pricing > hero {
			t.Error("blocks reordered: pricing should precede hero")
		}
	})

	t.Run("unknown kind is skipped with a warning", func(t *testing.T) {
		t.Parallel()

		doc := Document{Title: "Doc", Theme: DefaultTheme(), Blocks: []BlockInstance{
			{ID: "x1", Kind: BlockKind("carousel"), Data: HeroData{}},
			mustBlock(t, KindHero),
		}}
		html, warnings := compile(t, doc)
		if len(warnings) != 1 {
			t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
		}
		if !strings.Contains(warnings[0], "x1") || !strings.Contains(warnings[0], "carousel") {
			t.Errorf("warning lacks context: %q", warnings[0])
		}
		if !strings.Contains(html, `class="b-hero"`) {
			t.Error("valid block missing after a skipped one")
		}
	})

	t.Run("nil data is skipped with a warning", func(t *testing.T) {
		t.Parallel()

		doc := Document{Title: "Doc", Theme: DefaultTheme(), Blocks: []BlockInstance{
			{ID: "x2", Kind: KindHero},
		}}
		_, warnings := compile(t, doc)
		if len(warnings) != 1 {
			t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
		}
	})

	t.Run("mismatched data is skipped with a warning", func(t *testing.T) {
		t.Parallel()

		doc := Document{Title: "Doc", Theme: DefaultTheme(), Blocks: []BlockInstance{
			{ID: "x3", Kind: KindHero, Data: GalleryData{}},
		}}
		html, warnings := compile(t, doc)
		if len(warnings) != 1 {
			t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
		}
		if strings.Contains(html, `class="b-hero"`) || strings.Contains(html, `class="b-gallery"`) {
			t.Error("mismatched block was rendered")
		}
	})
}

// ---------------------------------------------------------------------------
// TestRenderBlocks - Per-Kind Markup
// ---------------------------------------------------------------------------

func TestRenderHero(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	html := renderHero(HeroData{
		Eyebrow:  "New",
		Title:    "Launch <fast>",
		Subtitle: "Ship & iterate",
		CTAText:  "Start",
		CTALink:  "#contact",
	}, theme)

	for _, want := range []string{
		`<section class="b-hero">`,
		`<div class="eyebrow">New</div>`,
		"<h1>Launch &lt;fast&gt;</h1>",
		`<p class="subtitle">Ship &amp; iterate</p>`,
		`href="#contact"`,
		`style="background:` + theme.Primary + `"`,
		">Start</a>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("hero missing %q in:\n%s", want, html)
		}
	}
}

func TestRenderFeatures(t *testing.T) {
	t.Parallel()

	html := renderFeatures(FeaturesData{
		Heading: "Why?",
		Items:   []Feature{{Title: "A", Text: "first"}, {Title: "B", Text: "second"}},
	}, DefaultTheme())

	if got := strings.Count(html, `<div class="card">`); got != 2 {
		t.Errorf("got %d cards, want 2", got)
	}
	if !strings.Contains(html, "<h3>A</h3>") || !strings.Contains(html, "<p>second</p>") {
		t.Errorf("feature content missing in:\n%s", html)
	}
}

func TestRenderGallery(t *testing.T) {
	t.Parallel()

	html := renderGallery(GalleryData{
		Heading: "Pics",
		Images:  []string{"assets/image-1.png", `x"y.png`},
	}, DefaultTheme())

	if !strings.Contains(html, `<img src="assets/image-1.png" alt="" />`) {
		t.Errorf("image tag missing in:\n%s", html)
	}
	if !strings.Contains(html, `<img src="x&quot;y.png" alt="" />`) {
		t.Errorf("attribute escaping missing in:\n%s", html)
	}
}

func TestRenderTestimonials(t *testing.T) {
	t.Parallel()

	html := renderTestimonials(TestimonialsData{
		Heading: "Said",
		Items:   []Testimonial{{Quote: "Nice & tidy", Author: "Ada"}},
	}, DefaultTheme())

	if !strings.Contains(html, "<p>“Nice &amp; tidy”</p>") {
		t.Errorf("quote missing in:\n%s", html)
	}
	if !strings.Contains(html, "<cite>— Ada</cite>") {
		t.Errorf("author missing in:\n%s", html)
	}
}

func TestRenderPricing(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	html := renderPricing(PricingData{
		Heading: "Plans",
		Plans: []Plan{
			{Name: "Basic", Price: "$5", Features: []string{"one"}, CTAText: "Buy", CTALink: "#b"},
			{Name: "Top", Price: "$50", Features: []string{"all"}, Highlight: true, CTAText: "Buy", CTALink: "#t"},
		},
	}, theme)

	if !strings.Contains(html, `<div class="plan">`) {
		t.Error("plain plan missing")
	}
	if !strings.Contains(html, `<div class="plan highlight">`) {
		t.Error("highlighted plan missing")
	}
	// Highlighted plans use the secondary color for their button.
	if !strings.Contains(html, `style="background:`+theme.Secondary+`"`) {
		t.Error("highlight button color missing")
	}
	if !strings.Contains(html, "<li>one</li>") {
		t.Error("plan feature missing")
	}
}

// ---------------------------------------------------------------------------
// TestRenderContact - Form Handler Modes
// ---------------------------------------------------------------------------

func TestRenderContact(t *testing.T) {
	t.Parallel()

	base := ContactData{Heading: "Contact us", Subtext: "Say hi", EmailTo: "secret@example.com"}

	t.Run("none emits a bare form", func(t *testing.T) {
		t.Parallel()

		d := base
		d.Handler = FormHandlerNone
		html := renderContact(d, DefaultTheme())
		if strings.Contains(html, "action=") || strings.Contains(html, "data-netlify") {
			t.Errorf("bare form has submission wiring:\n%s", html)
		}
		if !strings.Contains(html, `<form class="form">`) {
			t.Errorf("form tag missing in:\n%s", html)
		}
	})

	t.Run("formspree emits a POST action from the stored id", func(t *testing.T) {
		t.Parallel()

		d := base
		d.Handler = FormHandlerFormspree
		d.FormspreeID = "abcd1234"
		html := renderContact(d, DefaultTheme())
		if !strings.Contains(html, `method="POST" action="https://formspree.io/f/abcd1234"`) {
			t.Errorf("formspree action missing in:\n%s", html)
		}
	})

	t.Run("formspree without id behaves like none", func(t *testing.T) {
		t.Parallel()

		d := base
		d.Handler = FormHandlerFormspree
		html := renderContact(d, DefaultTheme())
		if strings.Contains(html, "action=") {
			t.Errorf("action emitted without a form id:\n%s", html)
		}
	})

	t.Run("netlify emits marker attribute and hidden field", func(t *testing.T) {
		t.Parallel()

		d := base
		d.Handler = FormHandlerNetlify
		html := renderContact(d, DefaultTheme())
		if !strings.Contains(html, `data-netlify="true" name="contact" method="POST"`) {
			t.Errorf("netlify form attributes missing in:\n%s", html)
		}
		if !strings.Contains(html, `<input type="hidden" name="form-name" value="contact">`) {
			t.Errorf("netlify hidden marker missing in:\n%s", html)
		}
		if strings.Contains(html, "action=") {
			t.Errorf("netlify form must not carry an explicit action:\n%s", html)
		}
	})

	t.Run("success redirect is a hidden field in every mode", func(t *testing.T) {
		t.Parallel()

		for _, handler := range []FormHandler{FormHandlerNone, FormHandlerFormspree, FormHandlerNetlify} {
			d := base
			d.Handler = handler
			d.SuccessRedirect = "https://example.com/thanks"
			html := renderContact(d, DefaultTheme())
			if !strings.Contains(html, `<input type="hidden" name="redirect" value="https://example.com/thanks">`) {
				t.Errorf("handler %q: redirect field missing in:\n%s", handler, html)
			}
		}
	})

	t.Run("reply-to email is never rendered", func(t *testing.T) {
		t.Parallel()

		html := renderContact(base, DefaultTheme())
		if strings.Contains(html, "secret@example.com") {
			t.Errorf("emailTo leaked into output:\n%s", html)
		}
	})
}

// ---------------------------------------------------------------------------
// TestCompileEscaping - No Raw User Angle Brackets
// ---------------------------------------------------------------------------

func TestCompileEscaping(t *testing.T) {
	t.Parallel()

	hostile := `<script>alert("xss")</script>`

	doc := Document{Title: hostile, Theme: DefaultTheme(), Blocks: []BlockInstance{
		{ID: "h", Kind: KindHero, Data: HeroData{Eyebrow: hostile, Title: hostile, Subtitle: hostile, CTAText: hostile, CTALink: hostile}},
		{ID: "f", Kind: KindFeatures, Data: FeaturesData{Heading: hostile, Items: []Feature{{Title: hostile, Text: hostile}}}},
		{ID: "g", Kind: KindGallery, Data: GalleryData{Heading: hostile, Images: []string{hostile}}},
		{ID: "t", Kind: KindTestimonials, Data: TestimonialsData{Heading: hostile, Items: []Testimonial{{Quote: hostile, Author: hostile}}}},
		{ID: "p", Kind: KindPricing, Data: PricingData{Heading: hostile, Plans: []Plan{{Name: hostile, Price: hostile, Features: []string{hostile}, CTAText: hostile, CTALink: hostile}}}},
		{ID: "c", Kind: KindContact, Data: ContactData{Heading: hostile, Subtext: hostile, Handler: FormHandlerFormspree, FormspreeID: "id1", SuccessRedirect: hostile}},
	}}

	html, _ := compile(t, doc)
	if strings.Contains(html, "<script>") {
		t.Error("unescaped script tag reached the output")
	}
	if strings.Contains(html, `alert("xss")</script>`) {
		t.Error("hostile payload survived unescaped")
	}
}

// ---------------------------------------------------------------------------
// TestCompileDeterminism - Byte-Identical Output
// ---------------------------------------------------------------------------

func TestCompileDeterminism(t *testing.T) {
	t.Parallel()

	doc := Document{Title: "Same", Theme: DefaultTheme(), Blocks: []BlockInstance{
		mustBlock(t, KindHero),
		mustBlock(t, KindFeatures),
		mustBlock(t, KindContact),
	}}

	a, _ := compile(t, doc)
	b, _ := compile(t, doc)
	if a != b {
		t.Error("compiling the same document twice produced different bytes")
	}
}
