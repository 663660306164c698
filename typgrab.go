// Package typgrab converts online long-form articles into Typst documents
// for print archiving. It fetches a page, locates the article body, strips
// share/subscribe chrome, resolves footnote references inline, materializes
// images locally, and emits a Typst fragment ready for template assembly.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, readability/).
package typgrab
