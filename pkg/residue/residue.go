// Package residue defines the amino-acid alphabets used by the web UI: the
// letters accepted in pasted protein sequences and the polarity classes used
// to color an alignment.
package residue

// Polarity is the chemical grouping of an amino acid used for display coloring.
type Polarity uint8

// Polarity classes; NotAminoAcid covers gaps, ambiguity codes and anything else.
const (
	NotAminoAcid Polarity = iota
	NonPolar
	AcidicPolar
	BasicPolar
	Polar
)

// String returns the CSS class the alignment stylesheet uses for p.
func (p Polarity) String() string {
	switch p {
	case NonPolar:
		return "nonPolar"
	case AcidicPolar:
		return "acidicPolar"
	case BasicPolar:
		return "basicPolar"
	case Polar:
		return "polar"
	default:
		return "NotAA"
	}
}

// Canonical lists the 20 standard amino acids.
const Canonical = "ACDEFGHIKLMNPQRSTVWY"

// Ambiguous lists the codes for pairs of closely related amino acids that
// sequencing cannot tell apart: B (Asx) and Z (Glx).
const Ambiguous = "BZ"

// Table maps single-letter residue codes to their polarity class.
// A Table is immutable once built.
type Table struct {
	classes [128]Polarity
}

// Standard returns the polarity table for the 20 canonical amino acids.
func Standard() *Table {
	t := &Table{}
	t.set(NonPolar, "AVFPMILW")
	t.set(AcidicPolar, "DE")
	t.set(BasicPolar, "RK")
	t.set(Polar, "STYHCNGQ")
	return t
}

func (t *Table) set(p Polarity, letters string) {
	for i := 0; i < len(letters); i++ {
		t.classes[letters[i]] = p
	}
}

// Class returns the polarity of r, or NotAminoAcid when r is not one of the
// canonical letters.
func (t *Table) Class(r rune) Polarity {
	if r < 0 || int(r) >= len(t.classes) {
		return NotAminoAcid
	}
	return t.classes[r]
}

// Alphabet is the set of letters accepted in a protein sequence.
type Alphabet struct {
	letters string
	member  [128]bool
}

// NewAlphabet builds an alphabet from the given letters.
func NewAlphabet(letters string) *Alphabet {
	a := &Alphabet{letters: letters}
	for i := 0; i < len(letters); i++ {
		if letters[i] < 128 {
			a.member[letters[i]] = true
		}
	}
	return a
}

// Protein returns the validation alphabet: the canonical amino acids plus
// the two ambiguity codes.
func Protein() *Alphabet {
	return NewAlphabet(Canonical + Ambiguous)
}

// Contains reports whether r belongs to the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	return r >= 0 && int(r) < len(a.member) && a.member[r]
}

// Len returns the number of letters in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.letters)
}

// String returns the letters in the order they were given.
func (a *Alphabet) String() string {
	return a.letters
}
