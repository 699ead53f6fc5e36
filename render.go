package landing

import (
	"fmt"
	"strings"
)

// Static HTML renderers, one per block kind. Each consumes the same
// data fields as the editor's live view of that kind, but emits plain
// escaped markup with no event wiring. Class names are contractually
// tied to the packaged stylesheet.

func renderHero(data BlockData, theme Theme) string {
	d, _ := data.(HeroData)
	return fmt.Sprintf(`
<section class="b-hero">
  <div class="eyebrow">%s</div>
  <h1>%s</h1>
  <p class="subtitle">%s</p>
  <a class="btn" href="%s" %s>%s</a>
</section>`,
		escapeText(d.Eyebrow),
		escapeText(d.Title),
		escapeText(d.Subtitle),
		escapeAttr(d.CTALink),
		buttonStyle(theme.Primary),
		escapeText(d.CTAText))
}

func renderFeatures(data BlockData, _ Theme) string {
	d, _ := data.(FeaturesData)
	var cards strings.Builder
	for _, it := range d.Items {
		fmt.Fprintf(&cards, `
    <div class="card">
      <h3>%s</h3>
      <p>%s</p>
    </div>`,
			escapeText(it.Title),
			escapeText(it.Text))
	}
	return fmt.Sprintf(`
<section class="b-features">
  <h2>%s</h2>
  <div class="grid">%s
  </div>
</section>`,
		escapeText(d.Heading), cards.String())
}

func renderGallery(data BlockData, _ Theme) string {
	d, _ := data.(GalleryData)
	var imgs strings.Builder
	for _, src := range d.Images {
		fmt.Fprintf(&imgs, "\n    <img src=\"%s\" alt=\"\" />", escapeAttr(src))
	}
	return fmt.Sprintf(`
<section class="b-gallery">
  <h2>%s</h2>
  <div class="masonry">%s
  </div>
</section>`,
		escapeText(d.Heading), imgs.String())
}

func renderTestimonials(data BlockData, _ Theme) string {
	d, _ := data.(TestimonialsData)
	var quotes strings.Builder
	for _, t := range d.Items {
		fmt.Fprintf(&quotes, `
    <blockquote>
      <p>“%s”</p>
      <cite>— %s</cite>
    </blockquote>`,
			escapeText(t.Quote),
			escapeText(t.Author))
	}
	return fmt.Sprintf(`
<section class="b-testimonials">
  <h2>%s</h2>
  <div class="list">%s
  </div>
</section>`,
		escapeText(d.Heading), quotes.String())
}

func renderPricing(data BlockData, theme Theme) string {
	d, _ := data.(PricingData)
	var plans strings.Builder
	for _, pl := range d.Plans {
		class := "plan"
		ctaColor := theme.Primary
		if pl.Highlight {
			class = "plan highlight"
			ctaColor = theme.Secondary
		}
		var feats strings.Builder
		for _, f := range pl.Features {
			feats.WriteString("<li>" + escapeText(f) + "</li>")
		}
		fmt.Fprintf(&plans, `
    <div class="%s">
      <div class="name">%s</div>
      <div class="price">%s</div>
      <ul>%s</ul>
      <a class="btn" href="%s" %s>%s</a>
    </div>`,
			class,
			escapeText(pl.Name),
			escapeText(pl.Price),
			feats.String(),
			escapeAttr(pl.CTALink),
			buttonStyle(ctaColor),
			escapeText(pl.CTAText))
	}
	return fmt.Sprintf(`
<section class="b-pricing">
  <h2>%s</h2>
  <div class="plans">%s
  </div>
</section>`,
		escapeText(d.Heading), plans.String())
}

func renderContact(data BlockData, theme Theme) string {
	d, _ := data.(ContactData)

	// The form's submission wiring depends on the handler mode: Formspree
	// posts to its endpoint, Netlify needs a marker attribute plus a
	// hidden form-name field and no action, plain forms get neither.
	var formAttrs string
	var hidden strings.Builder
	switch d.Handler {
	case FormHandlerFormspree:
		if d.FormspreeID != "" {
			formAttrs = fmt.Sprintf(` method="POST" action="%s"`, escapeAttr(formspreeAction(d.FormspreeID)))
		}
	case FormHandlerNetlify:
		formAttrs = ` data-netlify="true" name="contact" method="POST"`
		hidden.WriteString("\n    " + `<input type="hidden" name="form-name" value="contact">`)
	}
	if d.SuccessRedirect != "" {
		fmt.Fprintf(&hidden, "\n    <input type=\"hidden\" name=\"redirect\" value=\"%s\">", escapeAttr(d.SuccessRedirect))
	}

	return fmt.Sprintf(`
<section id="contact" class="b-contact">
  <h2>%s</h2>
  <p class="sub">%s</p>
  <form class="form"%s>
    <input placeholder="Your name" required>
    <input type="email" placeholder="Your email" required>
    <textarea placeholder="Message" rows="5" required></textarea>%s
    <button type="submit" %s>Send</button>
  </form>
</section>`,
		escapeText(d.Heading),
		escapeText(d.Subtext),
		formAttrs,
		hidden.String(),
		buttonStyle(theme.Primary))
}
