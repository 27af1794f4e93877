package wiki

import "strings"

// Title is the display form of a Wikipedia article name. Two titles name
// the same article when they are equal after case folding; the original
// casing is preserved for path output.
type Title = string

// Normalize returns the canonical identity key for a title. Visited maps
// and meeting-point checks key on this form only.
func Normalize(title Title) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// SameArticle reports whether two titles name the same article node.
func SameArticle(a, b Title) bool {
	return Normalize(a) == Normalize(b)
}
