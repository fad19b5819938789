// Package validation checks user-pasted protein sequences in FASTA-like format
// before they are submitted for alignment.
package validation

import (
	"fmt"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"msalsa/pkg/residue"
)

const (
	// RecordMarker starts a sequence header.
	RecordMarker = '>'

	// NoName labels diagnostics for residues that precede any header.
	NoName = "--- no name ---"

	MissingMarkerMessage = "Missing > at description beginning. Unable to manage first line."

	reportIntro = "The errors are:"
	lineBreak   = "<br>"
)

// Error is an invalid residue found while scanning.
type Error struct {
	Char     rune
	Sequence string
	Line     int
}

// Message is the user-facing description of the error.
func (e Error) Message() string {
	return fmt.Sprintf("Invalid character '%c' in sequence '%s' at line %d", e.Char, e.Sequence, e.Line)
}

// Report collects everything wrong with one input buffer.
type Report struct {
	// MissingMarker is set when the input does not begin with a header.
	MissingMarker bool
	Errors        []Error
	// Echo is the escaped input with line breaks as <br> and invalid
	// residues highlighted.
	Echo string
}

// Messages lists the report's diagnostics in encounter order.
func (r *Report) Messages() []string {
	msgs := make([]string, 0, len(r.Errors)+1)
	if r.MissingMarker {
		msgs = append(msgs, MissingMarkerMessage)
	}
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message())
	}
	return msgs
}

// HTML renders the report as an intro line, one paragraph per diagnostic and a
// final paragraph holding the highlighted input.
func (r *Report) HTML() string {
	var b strings.Builder
	b.WriteString(reportIntro)
	for _, msg := range r.Messages() {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(msg))
		b.WriteString("</p>")
	}
	b.WriteString("<p>")
	b.WriteString(r.Echo)
	b.WriteString("</p>")
	return b.String()
}

// Validator scans sequence records against a residue alphabet.
type Validator struct {
	alphabet *residue.Alphabet
}

// New returns a validator for the protein alphabet (20 canonical amino acids
// plus B and Z).
func New() *Validator {
	return NewWithAlphabet(residue.Protein())
}

func NewWithAlphabet(alphabet *residue.Alphabet) *Validator {
	return &Validator{alphabet: alphabet}
}

// Validate scans input and returns nil when every residue is valid.
//
// A record marker is recognized wherever the scan meets one, not only at the
// start of a line, so a '>' inside a sequence line starts a new record.
func (v *Validator) Validate(input string) *Report {
	report := &Report{}
	var echo strings.Builder

	line := 1
	name := NoName
	pos := 0

	if len(input) == 0 || input[0] != RecordMarker {
		report.MissingMarker = true
	} else {
		name, pos = readHeader(input, 0)
		line++
		writeHeader(&echo, name)
	}

	for pos < len(input) {
		c, size := utf8.DecodeRuneInString(input[pos:])
		switch {
		case c == RecordMarker:
			name, pos = readHeader(input, pos)
			line++
			writeHeader(&echo, name)
			continue
		case c == '\n':
			line++
			echo.WriteString(lineBreak)
		case unicode.IsSpace(c), v.alphabet.Contains(c):
			echo.WriteRune(c)
		default:
			report.Errors = append(report.Errors, Error{Char: c, Sequence: name, Line: line})
			echo.WriteString(`<strong class="bg-info">`)
			echo.WriteString(html.EscapeString(string(c)))
			echo.WriteString("</strong>")
		}
		pos += size
	}

	if !report.MissingMarker && len(report.Errors) == 0 {
		return nil
	}
	report.Echo = echo.String()
	return report
}

// readHeader returns the record name starting after the marker at pos and the
// offset just past the header line.
func readHeader(input string, pos int) (string, int) {
	rest := input[pos+1:]
	end := strings.IndexByte(rest, '\n')
	if end < 0 {
		return strings.TrimSuffix(rest, "\r"), len(input)
	}
	return strings.TrimSuffix(rest[:end], "\r"), pos + 1 + end + 1
}

func writeHeader(echo *strings.Builder, name string) {
	echo.WriteString("&gt;")
	echo.WriteString(html.EscapeString(name))
	echo.WriteString(lineBreak)
}
