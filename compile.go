package landing

import (
	"context"
	"fmt"
	"strings"
)

// footerCredit is the fixed credit line at the bottom of every export.
const footerCredit = "Built with Landing Blocks — static export"

// documentCompiler defines the contract for turning an asset-resolved
// block list into one complete HTML document.
type documentCompiler interface {
	Compile(ctx context.Context, doc Document) (html string, warnings []string, err error)
}

// htmlCompilation implements documentCompiler by folding the block list
// through the template registry and wrapping the result in the document
// shell.
type htmlCompilation struct{}

// Compile renders every block in document order and assembles the final
// HTML document. A block whose kind is missing from the registry, or
// whose data does not match its kind, is skipped with a warning rather
// than failing the whole document: a version-mismatched editor must not
// be able to break an export.
func (c *htmlCompilation) Compile(ctx context.Context, doc Document) (string, []string, error) {
	var warnings []string
	fragments := make([]string, 0, len(doc.Blocks))

	for _, b := range doc.Blocks {
		tpl, err := lookupTemplate(b.Kind)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("block %s: skipped: %v", b.ID, err))
			continue
		}
		if b.Data == nil {
			warnings = append(warnings, fmt.Sprintf("block %s: skipped: %v", b.ID, ErrNilBlockData))
			continue
		}
		if b.Data.blockKind() != b.Kind {
			warnings = append(warnings, fmt.Sprintf("block %s: skipped: %v: kind %q, data for %q",
				b.ID, ErrKindMismatch, b.Kind, b.Data.blockKind()))
			continue
		}
		fragments = append(fragments, tpl.StaticHTML(b.Data, doc.Theme))
	}

	if err := ctx.Err(); err != nil {
		return "", warnings, err
	}

	body := strings.Join(fragments, "\n\n")
	return htmlDocument(doc.Title, doc.Theme, body, doc.Seo), warnings, nil
}

// htmlDocument wraps a rendered body in the fixed document shell:
// metadata, font and stylesheet links, inline theme variables, and the
// footer credit. An empty body still yields a complete document.
func htmlDocument(title string, theme Theme, body string, seo *Seo) string {
	pageTitle := title
	var description, ogImage string
	if seo != nil {
		if seo.Title != "" {
			pageTitle = seo.Title
		}
		description = seo.Description
		ogImage = seo.OGImage
	}

	var meta strings.Builder
	if description != "" {
		fmt.Fprintf(&meta, "    <meta name=\"description\" content=\"%s\" />\n", escapeAttr(description))
	}
	fmt.Fprintf(&meta, "    <meta property=\"og:title\" content=\"%s\" />\n", escapeAttr(pageTitle))
	if description != "" {
		fmt.Fprintf(&meta, "    <meta property=\"og:description\" content=\"%s\" />\n", escapeAttr(description))
	}
	if ogImage != "" {
		fmt.Fprintf(&meta, "    <meta property=\"og:image\" content=\"%s\" />\n", escapeAttr(ogImage))
	}

	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
%s    <meta property="og:type" content="website" />
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="%s" rel="stylesheet">
    <link rel="stylesheet" href="styles.css" />
    <style>%s</style>
  </head>
  <body>
    <main>
%s
    </main>
    <footer>%s</footer>
  </body>
</html>`,
		escapeText(pageTitle),
		meta.String(),
		escapeAttr(googleFontsHref(theme.FontFamily)),
		themeCSSVars(theme),
		body,
		footerCredit)
}
