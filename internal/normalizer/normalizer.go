// Package normalizer handles directory name canonicalization for fastaheader.
package normalizer

import "strings"

const (
	// TagSeparator separates the isolate from the method and the method from
	// the length in a canonical name.
	TagSeparator = "_"
	// MethodSeparator joins the fragments of the method tag.
	MethodSeparator = "-"
)

// Tags strips one trailing dash and then one trailing underscore from raw and
// splits the result on underscores.
// A name without underscores yields a single tag; an empty name yields a
// single empty tag.
func Tags(raw string) []string {
	raw = strings.TrimSuffix(raw, MethodSeparator)
	raw = strings.TrimSuffix(raw, TagSeparator)
	return strings.Split(raw, TagSeparator)
}

// Canonicalize rewrites the name of an assembly directory into the canonical
// prefix used for headers and output file names.
//
// The first tag is the isolate and is followed by an underscore. Interior tags
// are joined with dashes, and the last tag is terminated by an underscore:
//
//	SW2315_n2760_R136_NB73_L1000_96NB -> SW2315_n2760-R136-NB73-L1000-96NB_
//
// A single tag yields "tag_". An empty name yields "_".
func Canonicalize(raw string) string {
	tags := Tags(raw)
	last := len(tags) - 1

	var b strings.Builder
	for i, tag := range tags {
		b.WriteString(tag)
		switch {
		case i == 0:
			b.WriteString(TagSeparator)
		case i == last:
			b.WriteString(TagSeparator)
		default:
			b.WriteString(MethodSeparator)
		}
	}
	return b.String()
}

// Isolate returns the isolate portion of a canonical prefix.
func Isolate(prefix string) string {
	isolate, _, _ := strings.Cut(prefix, TagSeparator)
	return isolate
}

// Method returns the dash-joined method portion of a canonical prefix, or an
// empty string when the prefix carries only an isolate.
func Method(prefix string) string {
	_, rest, found := strings.Cut(prefix, TagSeparator)
	if !found {
		return ""
	}
	return strings.TrimSuffix(rest, TagSeparator)
}
