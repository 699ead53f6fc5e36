package landing

import "strings"

// The static renderers build HTML by string concatenation, so these two
// helpers are the sole injection defense: every piece of user-authored
// text must pass through exactly one of them before it reaches output.

// escapeText escapes a string for use as HTML text content.
// Ampersands are replaced first so already-escaped entities stay intact.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// escapeAttr escapes a string for use inside a double-quoted HTML
// attribute value.
func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
