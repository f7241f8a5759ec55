// Package weight estimates molecular weight of a protein from its
// amino-acid composition. This is a pure package.
package weight

import (
	"strconv"
	"unicode/utf8"
)

// residues maps single-letter codes of the 20 standard amino acids to
// their masses in daltons.
var residues = map[rune]float64{
	'A': 89.1, 'R': 174.2, 'N': 132.1, 'D': 133.1,
	'C': 121.2, 'E': 147.1, 'Q': 146.1, 'G': 75.1,
	'H': 155.2, 'I': 131.2, 'L': 131.2, 'K': 146.2,
	'M': 149.2, 'F': 165.2, 'P': 115.1, 'S': 105.1,
	'T': 119.1, 'W': 204.2, 'Y': 181.2, 'V': 117.1,
}

// Residue returns the mass of a residue code in daltons. Codes outside of
// the standard table return false.
func Residue(code rune) (float64, bool) {
	w, ok := residues[code]
	return w, ok
}

// MolecularWeight returns the weight of a sequence in kilodaltons rounded
// to 2 decimal places. Codes that are not in the table (ambiguity codes,
// lowercase letters, gaps, stop symbols) contribute nothing. An empty
// sequence weighs 0.
func MolecularWeight(seq string) float64 {
	var total float64
	for _, r := range seq {
		total += residues[r]
	}
	return round2(total / 1000)
}

// Residues returns the number of residues in a sequence.
func Residues(seq string) int {
	return utf8.RuneCountInString(seq)
}

// round2 rounds the decimal value of f, not f*100, so values stored just
// below a tie are rounded down.
func round2(f float64) float64 {
	res, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	return res
}
