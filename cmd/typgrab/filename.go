package main

import "github.com/gosimple/slug"

// OutputFilename derives the .typ output filename from an article title.
// Falls back to "article.typ" for titles that slugify to nothing.
func OutputFilename(title string) string {
	s := slug.Make(title)
	if s == "" {
		s = "article"
	}
	return s + ".typ"
}
