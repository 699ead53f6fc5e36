package landing

import (
	"fmt"
	"net/url"
	"strings"
)

// defaultFontSpec is the Google Fonts request used when the theme's
// font family is not in the known set.
const defaultFontSpec = "Inter:wght@400;600;800"

// googleFontSpecs maps a primary font-family name to the weight list
// requested from Google Fonts. Unknown families fall back to
// defaultFontSpec.
var googleFontSpecs = map[string]string{
	"Inter":            "Inter:wght@400;600;800",
	"Poppins":          "Poppins:wght@400;600;800",
	"Roboto":           "Roboto:wght@400;700",
	"Montserrat":       "Montserrat:wght@400;700;900",
	"Lato":             "Lato:wght@400;700;900",
	"Open Sans":        "Open+Sans:wght@400;700;800",
	"Playfair Display": "Playfair+Display:wght@400;700;900",
}

// fontPrimaryName extracts the first family token of a CSS font-family
// list, with surrounding quotes stripped.
func fontPrimaryName(fontFamily string) string {
	first, _, _ := strings.Cut(fontFamily, ",")
	first = strings.TrimSpace(first)
	return strings.Trim(first, `"`)
}

// googleFontsHref resolves a theme font family to the stylesheet URL
// embedded in the exported document. Pure computation: nothing is
// fetched here, the browser opening the export loads the font.
func googleFontsHref(fontFamily string) string {
	spec, ok := googleFontSpecs[fontPrimaryName(fontFamily)]
	if !ok {
		spec = defaultFontSpec
	}
	return "https://fonts.googleapis.com/css2?family=" + spec + "&display=swap"
}

// themeCSSVars generates the CSS custom-property block binding the
// theme at the document root. The result is embedded in an inline
// <style> element so the exported page reproduces its colors without
// re-running the export.
func themeCSSVars(t Theme) string {
	vars := fmt.Sprintf(":root{--bg:%s;--text:%s;--primary:%s;--secondary:%s;--font:%s}",
		t.Background, t.Text, t.Primary, t.Secondary, t.FontFamily)
	return sanitizeCSS(vars)
}

// sanitizeCSS escapes sequences that could break out of a <style>
// block. Prevents theme values from closing the style tag prematurely.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// buttonStyle renders the inline background style shared by call-to-
// action buttons. Color values come from the theme, which is still
// caller-controlled, so the value is attribute-escaped.
func buttonStyle(color string) string {
	return `style="background:` + escapeAttr(color) + `"`
}

// formspreeBaseURL is the submission endpoint prefix for the Formspree
// form handler; the stored form ID is appended verbatim.
const formspreeBaseURL = "https://formspree.io/f/"

// formspreeAction builds the POST target for a Formspree-handled form.
func formspreeAction(formID string) string {
	return formspreeBaseURL + url.PathEscape(formID)
}
