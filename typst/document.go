package typst

import (
	"strings"

	"github.com/fwojciec/typgrab"
)

// TemplateFileName is the template file the generated document imports.
const TemplateFileName = "template.typ"

// Template is the default article template written alongside generated
// documents when no template.typ exists yet.
const Template = `#let article(title: "", author: "", date: "", url: "", body) = {
  set page(paper: "a4", margin: (x: 2.2cm, y: 2.6cm))
  set text(font: "New Computer Modern", size: 11pt)
  set par(justify: true, leading: 0.65em)
  set quote(block: true)

  align(center)[
    #text(size: 17pt, weight: "bold")[#title]
    #v(0.4em)
    #text(size: 10pt)[#author #h(1.5em) #date]
    #v(0.2em)
    #text(size: 8pt, fill: gray)[#link(url)]
  ]
  v(1.5em)
  body
}
`

// Document assembles a complete Typst document from a converted article.
// Metadata fields are escaped; the content fragment is embedded verbatim
// since the renderer already escaped its text nodes.
func Document(a *typgrab.Article) string {
	var b strings.Builder
	b.WriteString("#import \"")
	b.WriteString(TemplateFileName)
	b.WriteString("\": article\n\n")
	b.WriteString("#show: doc => article(\n")
	b.WriteString("  title: \"" + Escape(a.Title) + "\",\n")
	b.WriteString("  author: \"" + Escape(a.Author) + "\",\n")
	b.WriteString("  date: \"" + Escape(a.Date) + "\",\n")
	b.WriteString("  url: \"" + Escape(a.URL) + "\",\n")
	b.WriteString("  [\n")
	b.WriteString(a.Content)
	b.WriteString("\n  ]\n)\n")
	return b.String()
}
