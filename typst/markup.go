// Package typst builds fragments of Typst markup: escaping, inline and
// block constructors, and the final document template. It knows nothing
// about HTML; the goquery package drives it during rendering.
package typst

import (
	"fmt"
	"strings"
)

// escaper backslash-escapes every character Typst treats as syntax.
var escaper = strings.NewReplacer(
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"$", `\$`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"@", `\@`,
)

// Escape returns text with all Typst syntax characters backslash-escaped.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Heading returns a Typst heading of the given level (1-6).
func Heading(level int, content string) string {
	return strings.Repeat("=", level) + " " + content + "\n\n"
}

// Strong wraps content in a strong-emphasis element.
func Strong(content string) string {
	return "#strong[" + content + "]"
}

// Emph wraps content in an italic-emphasis element.
func Emph(content string) string {
	return "#emph[" + content + "]"
}

// Quote wraps content in a block quotation.
func Quote(content string) string {
	return "#quote(block: true)[" + content + "]\n\n"
}

// Link wraps content in a hyperlink to href.
func Link(href, content string) string {
	return fmt.Sprintf("#link(%q)[%s]", href, content)
}

// Footnote returns an inline footnote annotation.
func Footnote(content string) string {
	return "#footnote[" + content + "]"
}

// Super renders text in superscript.
func Super(text string) string {
	return "#super[" + text + "]"
}

// Figure returns a figure block referencing a local image path.
// The caption may be empty.
func Figure(path, caption string) string {
	return fmt.Sprintf("#figure(image(%q), caption: [%s])\n\n", path, caption)
}

// WideFigure is Figure stretched to the full text width, used for
// embedded chart previews whose thumbnails render small otherwise.
func WideFigure(path, caption string) string {
	return fmt.Sprintf("#figure(image(%q, width: 100%%), caption: [%s])\n\n", path, caption)
}
