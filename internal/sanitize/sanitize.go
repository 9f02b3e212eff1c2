// Package sanitize escapes markup-significant characters in user-supplied
// text before it is embedded into outbound email bodies. Escaping is
// context-specific: attribute-like fields (names, addresses) and free-text
// HTML bodies use different character sets.
package sanitize

import "strings"

// Context selects which character set to escape for.
type Context int

const (
	// ContextAttribute is for short fields embedded into subjects, headers
	// and attribute-like positions. Escapes < > " ' / and trims surrounding
	// whitespace.
	ContextAttribute Context = iota
	// ContextText is for free-text bodies embedded into HTML. Escapes
	// & < > " ' and preserves interior and surrounding whitespace.
	ContextText
)

// attributeReplacer covers characters that could break out of an
// attribute-like embedding. The forward slash closes off tag tricks such
// as </script.
var attributeReplacer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// textReplacer escapes free text for an HTML body. Replacer runs a single
// pass over the input, so the &-entity never re-escapes output of the
// other replacements.
var textReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape neutralizes markup-significant characters in s for the given
// embedding context.
func Escape(s string, ctx Context) string {
	if ctx == ContextText {
		return textReplacer.Replace(s)
	}
	return strings.TrimSpace(attributeReplacer.Replace(s))
}

// Attribute escapes s for attribute-like embedding (see ContextAttribute).
func Attribute(s string) string { return Escape(s, ContextAttribute) }

// Text escapes s for free-text HTML embedding (see ContextText).
func Text(s string) string { return Escape(s, ContextText) }
