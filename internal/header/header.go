// Package header rewrites assembler FASTA headers into the canonical
// ISOLATE_method_length_topology form.
package header

import "strings"

const (
	// Marker starts every header line.
	Marker = ">"

	// LinearTopology is used when a header carries no circular token.
	LinearTopology = "linear"

	lengthKey   = "length"
	circularKey = "circular"
)

// Metadata holds the fields extracted from an assembler header.
type Metadata struct {
	Length   string
	Topology string
	Circular bool // True if the header is rendered with a circular topology
}

// IsHeader reports whether line is a header line.
func IsHeader(line string) bool {
	return strings.HasPrefix(line, Marker)
}

// Parse extracts length and topology from an assembler header such as
//
//	>1 length=5000000 depth=1.00x circular=true
//
// Tokens are separated by single spaces. A token containing "length" yields
// its second '='-separated field; otherwise a token containing "circular"
// yields its first field, so the topology is the key itself.
// When a field matches more than once, the last token wins. The line
// terminator, "\n" or "\r\n", is not part of any value and no value keeps
// a newline.
func Parse(line string) Metadata {
	var md Metadata

	for _, token := range strings.Split(trimTerminator(line), " ") {
		if strings.Contains(token, lengthKey) {
			md.Length = stripNewline(field(token, 1))
		} else if strings.Contains(token, circularKey) {
			md.Topology = stripNewline(field(token, 0))
		}
	}

	if md.Topology == "" {
		md.Topology = LinearTopology
	}
	md.Circular = md.Topology != LinearTopology
	return md
}

// Format renders the metadata as a header line with the given canonical
// prefix, terminated by a newline.
func (m Metadata) Format(prefix string) string {
	return Marker + prefix + m.Length + "_" + m.Topology + "\n"
}

// Transform rewrites one header line using the canonical prefix.
func Transform(line, prefix string) string {
	return Parse(line).Format(prefix)
}

// field returns the i-th '='-separated field of token, or an empty string
// when the token has fewer fields.
func field(token string, i int) string {
	fields := strings.Split(token, "=")
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}

func stripNewline(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}

// trimTerminator removes one trailing "\n" and then one trailing "\r".
func trimTerminator(line string) string {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}
