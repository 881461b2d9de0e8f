package scanner

import (
	"regexp"
	"strings"
)

// StatementKind distinguishes the directive kinds the rules care about.
type StatementKind int

const (
	Import StatementKind = iota
	Export
)

// String returns the directive keyword.
func (k StatementKind) String() string {
	if k == Export {
		return "export"
	}
	return "import"
}

// Statement is one import or export directive found in a source file.
// Start and End are byte offsets of the URI literal (without quotes) within
// the file, usable as a correction target range.
type Statement struct {
	Kind  StatementKind
	URI   string
	Line  int // 1-based
	Start int
	End   int
}

var directiveRe = regexp.MustCompile(`^\s*(import|export)\s+('([^']*)'|"([^"]*)")`)

// Statements extracts the import/export directives from source text. The
// scan is line-oriented: directives spanning multiple lines or hidden in
// block comments are out of scope for a structural checker.
func Statements(src []byte) []Statement {
	var stmts []Statement
	offset := 0
	line := 0

	for _, raw := range strings.SplitAfter(string(src), "\n") {
		line++
		text := strings.TrimSuffix(raw, "\n")
		if m := directiveRe.FindStringSubmatchIndex(text); m != nil {
			kind := Import
			if text[m[2]:m[3]] == "export" {
				kind = Export
			}
			// Group 3 matched for single quotes, group 4 for double.
			g := 3
			if m[2*g] < 0 {
				g = 4
			}
			stmts = append(stmts, Statement{
				Kind:  kind,
				URI:   text[m[2*g]:m[2*g+1]],
				Line:  line,
				Start: offset + m[2*g],
				End:   offset + m[2*g+1],
			})
		}
		offset += len(raw)
	}

	return stmts
}
