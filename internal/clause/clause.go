// Package clause recovers the logical clause hierarchy of a numbered
// standards document from assembled layout lines: it detects heading
// lines by their dotted-decimal identifier and typographic prominence,
// builds the parent/child clause tree, and reconstructs body paragraphs.
package clause

import (
	"strconv"
	"strings"
)

// Clause is a node in the recovered document hierarchy. Body lines are
// accumulated during the tree-building pass (empty entries mark forced
// paragraph breaks); after that pass a Clause is not mutated.
type Clause struct {
	Identifier string
	Title      string
	BodyLines  []string
	Children   []*Clause
}

// Heading is a detected structural marker: a dotted numeric identifier,
// its title, the index of its first source line, and how many source
// lines (including interior blanks) it consumed.
type Heading struct {
	Identifier string
	Title      string
	LineIndex  int
	LineCount  int
}

// identifierSegments parses a dotted identifier into its integer
// segments. Identifiers come from the heading pattern, so the segments
// are always plain digits.
func identifierSegments(identifier string) []int {
	parts := strings.Split(identifier, ".")
	segments := make([]int, len(parts))
	for i, p := range parts {
		n, _ := strconv.Atoi(p)
		segments[i] = n
	}
	return segments
}

// lessIdentifiers compares identifiers numerically per segment, so that
// "4.2" orders before "4.10".
func lessIdentifiers(a, b string) bool {
	as, bs := identifierSegments(a), identifierSegments(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}

// parentIdentifier drops the last dot segment; empty for top-level
// identifiers.
func parentIdentifier(identifier string) string {
	i := strings.LastIndex(identifier, ".")
	if i < 0 {
		return ""
	}
	return identifier[:i]
}
